package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type ApplicationRepository interface {
	// Create returns utils.ErrDuplicate when the (job, applicant) pair
	// already exists; the unique index decides races.
	Create(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicate
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("applicant_id = ?", applicantID).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Application{}).Error
}
