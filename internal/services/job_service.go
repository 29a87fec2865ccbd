package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobport/jobport/internal/authz"
	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

const maxSalary = 99_999_999.99

type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       float64
	Deadline     time.Time
}

type JobService interface {
	// Create persists the job and then runs the alert fan-out; fan-out
	// failures never roll the job back.
	Create(ctx context.Context, sub authz.Subject, in JobInput) (*models.Job, []NotificationResult, error)
	Update(ctx context.Context, sub authz.Subject, jobID string, in JobInput) (*models.Job, error)
	Delete(ctx context.Context, sub authz.Subject, jobID string) error
	Get(ctx context.Context, jobID string) (*models.Job, error)
	List(ctx context.Context, f pgrepo.JobFilter) ([]models.Job, error)
	ListMine(ctx context.Context, sub authz.Subject) ([]models.Job, error)
}

type jobService struct {
	jobs      pgrepo.JobRepository
	companies pgrepo.CompanyRepository
	engine    AlertEngine
}

func NewJobService(jobs pgrepo.JobRepository, companies pgrepo.CompanyRepository, engine AlertEngine) JobService {
	return &jobService{jobs: jobs, companies: companies, engine: engine}
}

func validateJobInput(op string, in JobInput) error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Requirements) == "" ||
		strings.TrimSpace(in.Location) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title, description, requirements, and location are required", nil)
	}
	if in.Salary <= 0 || in.Salary > maxSalary {
		return utils.E(utils.CodeInvalidArgument, op, "salary must be positive and within bounds", nil)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !in.Deadline.After(today) {
		return utils.E(utils.CodeInvalidArgument, op, "deadline must be in the future", nil)
	}
	return nil
}

func (s *jobService) Create(ctx context.Context, sub authz.Subject, in JobInput) (*models.Job, []NotificationResult, error) {
	const op = "JobService.Create"

	if err := authz.CanAccess(sub, models.RoleEmployer); err != nil {
		return nil, nil, err
	}
	if err := validateJobInput(op, in); err != nil {
		return nil, nil, err
	}

	company, err := s.companies.GetByUserID(ctx, sub.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeInvalidArgument, op, "create a company profile before posting jobs", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load company", err)
	}

	now := time.Now().UTC()
	job := &models.Job{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     strings.TrimSpace(in.Location),
		Salary:       in.Salary,
		Deadline:     in.Deadline,
		PostedDate:   now,
		UpdatedAt:    now,
		Company:      company,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	// fan-out runs after the job row is committed, once per created job
	results := s.engine.OnJobCreated(ctx, job)

	return job, results, nil
}

func (s *jobService) Update(ctx context.Context, sub authz.Subject, jobID string, in JobInput) (*models.Job, error) {
	const op = "JobService.Update"

	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(sub, authz.JobResource(job), authz.ActionChange); err != nil {
		return nil, err
	}
	if err := validateJobInput(op, in); err != nil {
		return nil, err
	}

	job.Title = strings.TrimSpace(in.Title)
	job.Description = in.Description
	job.Requirements = in.Requirements
	job.Location = strings.TrimSpace(in.Location)
	job.Salary = in.Salary
	job.Deadline = in.Deadline
	job.UpdatedAt = time.Now().UTC()

	// updates never re-fire the alert engine
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, sub authz.Subject, jobID string) error {
	const op = "JobService.Delete"

	job, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.JobResource(job), authz.ActionDelete); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	return nil
}

func (s *jobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	const op = "JobService.Get"

	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, f pgrepo.JobFilter) ([]models.Job, error) {
	const op = "JobService.List"

	jobs, err := s.jobs.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return jobs, nil
}

func (s *jobService) ListMine(ctx context.Context, sub authz.Subject) ([]models.Job, error) {
	const op = "JobService.ListMine"

	if err := authz.CanAccess(sub, models.RoleEmployer); err != nil {
		return nil, err
	}
	company, err := s.companies.GetByUserID(ctx, sub.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "company profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load company", err)
	}
	jobs, err := s.jobs.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return jobs, nil
}
