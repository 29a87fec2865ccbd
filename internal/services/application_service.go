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

const maxCoverLetterLen = 5000

// ApplicationSummary is the employer dashboard roll-up by status.
type ApplicationSummary struct {
	Total       int `json:"total"`
	Applied     int `json:"applied"`
	UnderReview int `json:"under_review"`
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
}

type ApplicationService interface {
	Apply(ctx context.Context, sub authz.Subject, jobID, resumePath, coverLetter string) (*models.Application, error)
	Get(ctx context.Context, sub authz.Subject, id string) (*models.Application, error)
	ListMine(ctx context.Context, sub authz.Subject) ([]models.Application, error)
	// ListForEmployer is pre-filtered to applications on the employer's own
	// jobs; the object gate is defense-in-depth on top of that.
	ListForEmployer(ctx context.Context, sub authz.Subject) ([]models.Application, ApplicationSummary, error)
	UpdateStatus(ctx context.Context, sub authz.Subject, id string, status models.ApplicationStatus) (*models.Application, error)
	Delete(ctx context.Context, sub authz.Subject, id string) error
}

type applicationService struct {
	applications pgrepo.ApplicationRepository
	jobs         pgrepo.JobRepository
	companies    pgrepo.CompanyRepository
}

func NewApplicationService(
	applications pgrepo.ApplicationRepository,
	jobs pgrepo.JobRepository,
	companies pgrepo.CompanyRepository,
) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs, companies: companies}
}

func (s *applicationService) Apply(ctx context.Context, sub authz.Subject, jobID, resumePath, coverLetter string) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return nil, err
	}
	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}
	if strings.TrimSpace(resumePath) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume is required", nil)
	}
	if len(coverLetter) > maxCoverLetterLen {
		return nil, utils.E(utils.CodeInvalidArgument, op, "cover letter is too long", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if !job.IsActive() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "this job posting has expired", nil)
	}

	a := &models.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		ApplicantID: sub.UserID,
		ResumePath:  resumePath,
		CoverLetter: coverLetter,
		Status:      models.StatusApplied,
		AppliedDate: time.Now().UTC(),
		Job:         job,
	}

	// the unique (job, applicant) index decides concurrent duplicates
	if err := s.applications.Create(ctx, a); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "you have already applied for this job", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to submit application", err)
	}
	return a, nil
}

func (s *applicationService) Get(ctx context.Context, sub authz.Subject, id string) (*models.Application, error) {
	const op = "ApplicationService.Get"

	a, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(sub, authz.ApplicationResource(a), authz.ActionView); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *applicationService) ListMine(ctx context.Context, sub authz.Subject) ([]models.Application, error) {
	const op = "ApplicationService.ListMine"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByApplicant(ctx, sub.UserID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return apps, nil
}

func (s *applicationService) ListForEmployer(ctx context.Context, sub authz.Subject) ([]models.Application, ApplicationSummary, error) {
	const op = "ApplicationService.ListForEmployer"

	if err := authz.CanAccess(sub, models.RoleEmployer); err != nil {
		return nil, ApplicationSummary{}, err
	}
	company, err := s.companies.GetByUserID(ctx, sub.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, ApplicationSummary{}, utils.E(utils.CodeNotFound, op, "company profile not found", err)
		}
		return nil, ApplicationSummary{}, utils.E(utils.CodeInternal, op, "failed to load company", err)
	}

	apps, err := s.applications.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, ApplicationSummary{}, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}

	var sum ApplicationSummary
	sum.Total = len(apps)
	for _, a := range apps {
		switch a.Status {
		case models.StatusApplied:
			sum.Applied++
		case models.StatusUnderReview:
			sum.UnderReview++
		case models.StatusShortlisted:
			sum.Shortlisted++
		case models.StatusRejected:
			sum.Rejected++
		}
	}
	return apps, sum, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, sub authz.Subject, id string, status models.ApplicationStatus) (*models.Application, error) {
	const op = "ApplicationService.UpdateStatus"

	if !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	a, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(sub, authz.ApplicationResource(a), authz.ActionChange); err != nil {
		return nil, err
	}

	if err := s.applications.UpdateStatus(ctx, a.ID, status); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update status", err)
	}
	a.Status = status
	return a, nil
}

// Delete is superuser-only: the capability table grants no delete on
// applications to either role.
func (s *applicationService) Delete(ctx context.Context, sub authz.Subject, id string) error {
	const op = "ApplicationService.Delete"

	a, err := s.load(ctx, op, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.ApplicationResource(a), authz.ActionDelete); err != nil {
		return err
	}
	if err := s.applications.Delete(ctx, a.ID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete application", err)
	}
	return nil
}

func (s *applicationService) load(ctx context.Context, op, id string) (*models.Application, error) {
	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application id is required", nil)
	}
	a, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}
	return a, nil
}
