package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

// JobFilter narrows the public job listing. Keyword searches title,
// description, and requirements; location is a substring match.
type JobFilter struct {
	Keyword    string
	Location   string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	Update(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id string) error
	// GetByID preloads the owning company so the ownership chain is
	// available to the authorization gate.
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, f JobFilter) ([]models.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Job, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) Update(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", j.ID).
		Updates(map[string]any{
			"title":        j.Title,
			"description":  j.Description,
			"requirements": j.Requirements,
			"location":     j.Location,
			"salary":       j.Salary,
			"deadline":     j.Deadline,
			"updated_at":   j.UpdatedAt,
		}).Error
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Job{}).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("id = ?", id).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) List(ctx context.Context, f JobFilter) ([]models.Job, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{}).Preload("Company")

	if f.ActiveOnly {
		q = q.Where("deadline > ?", time.Now().UTC().Format("2006-01-02"))
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ? OR requirements ILIKE ?", kw, kw, kw)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var jobs []models.Job
	err := q.Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("company_id = ?", companyID).
		Order("posted_date DESC").
		Find(&jobs).Error
	return jobs, err
}
