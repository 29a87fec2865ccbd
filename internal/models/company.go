package models

import "time"

// Company belongs to exactly one employer; companies.user_id carries a
// unique index so concurrent double-creation cannot produce two rows.
type Company struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;uniqueIndex" json:"user_id"`

	Name        string `gorm:"column:name;type:text" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Website     string `gorm:"column:website;type:text" json:"website,omitempty"`
	LogoPath    string `gorm:"column:logo_path;type:text" json:"logo_path,omitempty"`
	Location    string `gorm:"column:location;type:text" json:"location"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
