package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type CompanyRepository interface {
	Upsert(ctx context.Context, c *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByUserID(ctx context.Context, userID string) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db: db}
}

// Upsert keys on the unique user_id, so an employer keeps exactly one
// company row even under concurrent submits.
func (r *companyRepo) Upsert(ctx context.Context, c *models.Company) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "website", "logo_path", "location", "updated_at"}),
		}).
		Create(c).Error
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var c models.Company
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID string) (*models.Company, error) {
	var c models.Company
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Company{}).Error
}
