package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type JobRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Salary       float64 `json:"salary" binding:"required"`
	Deadline     string  `json:"deadline" binding:"required"` // YYYY-MM-DD
}

func (r JobRequest) toInput(op string) (services.JobInput, error) {
	deadline, err := time.Parse("2006-01-02", r.Deadline)
	if err != nil {
		return services.JobInput{}, utils.E(utils.CodeInvalidArgument, op, "deadline must be YYYY-MM-DD", err)
	}
	return services.JobInput{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Salary:       r.Salary,
		Deadline:     deadline,
	}, nil
}

type CreateJobResponse struct {
	Job           *models.Job                   `json:"job"`
	Notifications []services.NotificationResult `json:"notifications,omitempty"`
}

func (h *JobHandler) Create(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}
	in, err := req.toInput("JobHandler.Create")
	if err != nil {
		writeError(c, err)
		return
	}

	job, results, err := h.svc.Create(c.Request.Context(), sub, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateJobResponse{Job: job, Notifications: results})
}

func (h *JobHandler) Update(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "invalid request body", err))
		return
	}
	in, err := req.toInput("JobHandler.Update")
	if err != nil {
		writeError(c, err)
		return
	}

	job, err := h.svc.Update(c.Request.Context(), sub, c.Param("job_id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), sub, c.Param("job_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageParams clamps caller-supplied pagination; a junk or negative limit can
// never disable the cap on the public listing.
func pageParams(limitStr, offsetStr string) (limit, offset int) {
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// List is the public job board: active postings only, with optional keyword
// and location filters.
func (h *JobHandler) List(c *gin.Context) {
	limit, offset := pageParams(c.Query("limit"), c.Query("offset"))

	jobs, err := h.svc.List(c.Request.Context(), pgrepo.JobFilter{
		Keyword:    c.Query("keyword"),
		Location:   c.Query("location"),
		ActiveOnly: true,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Mine lists the employer's own postings, expired ones included.
func (h *JobHandler) Mine(c *gin.Context) {
	sub, ok := requireSubject(c)
	if !ok {
		return
	}

	jobs, err := h.svc.ListMine(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
