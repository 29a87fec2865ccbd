package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type CompanyHandler struct {
	svc services.CompanyService
}

func NewCompanyHandler(svc services.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoPath    string `json:"logo_path"`
	Location    string `json:"location" binding:"required"`
}

func (h *CompanyHandler) Upsert(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CompanyHandler.Upsert", "invalid request body", err))
		return
	}

	company, err := h.svc.Upsert(c.Request.Context(), sub, services.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoPath:    req.LogoPath,
		Location:    req.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Mine(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	company, err := h.svc.GetMine(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.svc.GetByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), sub); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
