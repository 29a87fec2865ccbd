package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/services"
)

type NotificationHandler struct {
	svc services.NotificationService
}

func NewNotificationHandler(svc services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the inbox. Without ?unread=1 the listing doubles as "view the
// inbox" and flips every unread notification to read.
func (h *NotificationHandler) List(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "1" || c.Query("unread") == "true"

	out, err := h.svc.List(c.Request.Context(), sub, unreadOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), sub, c.Param("notification_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	count, err := h.svc.UnreadCount(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}
