package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type AlertRepository interface {
	Create(ctx context.Context, a *models.JobAlert) error
	GetByID(ctx context.Context, id string) (*models.JobAlert, error)
	ListByUser(ctx context.Context, userID string) ([]models.JobAlert, error)
	// ListAll feeds the fan-out scan on job creation.
	ListAll(ctx context.Context) ([]models.JobAlert, error)
	Delete(ctx context.Context, id string) error
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) Create(ctx context.Context, a *models.JobAlert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *alertRepo) GetByID(ctx context.Context, id string) (*models.JobAlert, error) {
	var a models.JobAlert
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *alertRepo) ListByUser(ctx context.Context, userID string) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

func (r *alertRepo) ListAll(ctx context.Context) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&alerts).Error
	return alerts, err
}

func (r *alertRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.JobAlert{}).Error
}
