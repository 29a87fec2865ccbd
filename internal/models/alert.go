package models

import "time"

// JobAlert belongs to a jobseeker; keyword and location are free text
// matched against new jobs by the alert engine.
type JobAlert struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;index" json:"user_id"`

	Keyword  string `gorm:"column:keyword;type:text" json:"keyword"`
	Location string `gorm:"column:location;type:text" json:"location"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (JobAlert) TableName() string { return "job_alerts" }
