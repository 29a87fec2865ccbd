package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type AlertHandler struct {
	svc services.AlertService
}

func NewAlertHandler(svc services.AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

type CreateAlertRequest struct {
	Keyword  string `json:"keyword" binding:"required"`
	Location string `json:"location" binding:"required"`
}

func (h *AlertHandler) Create(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AlertHandler.Create", "invalid request body", err))
		return
	}

	a, err := h.svc.Create(c.Request.Context(), sub, req.Keyword, req.Location)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *AlertHandler) Mine(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	alerts, err := h.svc.ListMine(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (h *AlertHandler) Delete(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), sub, c.Param("alert_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
