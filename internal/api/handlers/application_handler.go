package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	ResumePath  string `json:"resume_path" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "invalid request body", err))
		return
	}

	a, err := h.svc.Apply(c.Request.Context(), sub, c.Param("job_id"), req.ResumePath, req.CoverLetter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	a, err := h.svc.Get(c.Request.Context(), sub, c.Param("application_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) Mine(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	apps, err := h.svc.ListMine(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) ForEmployer(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	apps, sum, err := h.svc.ListForEmployer(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps, "summary": sum})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateStatus", "invalid request body", err))
		return
	}

	a, err := h.svc.UpdateStatus(c.Request.Context(), sub, c.Param("application_id"), models.ApplicationStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), sub, c.Param("application_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
