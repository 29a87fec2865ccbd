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

type CompanyInput struct {
	Name        string
	Description string
	Website     string
	LogoPath    string
	Location    string
}

type CompanyService interface {
	// Upsert creates or updates the employer's single company profile.
	Upsert(ctx context.Context, sub authz.Subject, in CompanyInput) (*models.Company, error)
	GetMine(ctx context.Context, sub authz.Subject) (*models.Company, error)
	GetByID(ctx context.Context, id string) (*models.Company, error)
	Delete(ctx context.Context, sub authz.Subject) error
}

type companyService struct {
	companies pgrepo.CompanyRepository
}

func NewCompanyService(companies pgrepo.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) Upsert(ctx context.Context, sub authz.Subject, in CompanyInput) (*models.Company, error) {
	const op = "CompanyService.Upsert"

	if err := authz.CanAccess(sub, models.RoleEmployer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name and location are required", nil)
	}

	now := time.Now().UTC()
	c := &models.Company{
		ID:          uuid.NewString(),
		UserID:      sub.UserID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Website:     in.Website,
		LogoPath:    in.LogoPath,
		Location:    strings.TrimSpace(in.Location),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.companies.Upsert(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save company", err)
	}

	// the upsert may have kept an existing row; reload by owner
	saved, err := s.companies.GetByUserID(ctx, sub.UserID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload company", err)
	}
	return saved, nil
}

func (s *companyService) GetMine(ctx context.Context, sub authz.Subject) (*models.Company, error) {
	const op = "CompanyService.GetMine"

	if err := authz.CanAccess(sub, models.RoleEmployer); err != nil {
		return nil, err
	}

	c, err := s.companies.GetByUserID(ctx, sub.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "company profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get company", err)
	}
	return c, nil
}

func (s *companyService) GetByID(ctx context.Context, id string) (*models.Company, error) {
	const op = "CompanyService.GetByID"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "company id is required", nil)
	}

	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "company not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get company", err)
	}
	return c, nil
}

func (s *companyService) Delete(ctx context.Context, sub authz.Subject) error {
	const op = "CompanyService.Delete"

	c, err := s.GetMine(ctx, sub)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.CompanyResource(c), authz.ActionDelete); err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, c.ID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete company", err)
	}
	return nil
}
