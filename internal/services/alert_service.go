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

type AlertService interface {
	Create(ctx context.Context, sub authz.Subject, keyword, location string) (*models.JobAlert, error)
	ListMine(ctx context.Context, sub authz.Subject) ([]models.JobAlert, error)
	Delete(ctx context.Context, sub authz.Subject, id string) error
}

type alertService struct {
	alerts pgrepo.AlertRepository
}

func NewAlertService(alerts pgrepo.AlertRepository) AlertService {
	return &alertService{alerts: alerts}
}

func (s *alertService) Create(ctx context.Context, sub authz.Subject, keyword, location string) (*models.JobAlert, error) {
	const op = "AlertService.Create"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return nil, err
	}

	keyword = strings.TrimSpace(keyword)
	location = strings.TrimSpace(location)
	if keyword == "" || location == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "keyword and location are required", nil)
	}

	a := &models.JobAlert{
		ID:        uuid.NewString(),
		UserID:    sub.UserID,
		Keyword:   keyword,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create alert", err)
	}
	return a, nil
}

func (s *alertService) ListMine(ctx context.Context, sub authz.Subject) ([]models.JobAlert, error) {
	const op = "AlertService.ListMine"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return nil, err
	}
	alerts, err := s.alerts.ListByUser(ctx, sub.UserID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list alerts", err)
	}
	return alerts, nil
}

func (s *alertService) Delete(ctx context.Context, sub authz.Subject, id string) error {
	const op = "AlertService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "alert id is required", nil)
	}

	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "alert not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get alert", err)
	}
	if err := authz.Authorize(sub, authz.AlertResource(a), authz.ActionDelete); err != nil {
		return err
	}
	if err := s.alerts.Delete(ctx, a.ID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete alert", err)
	}
	return nil
}
