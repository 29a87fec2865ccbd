package models

import "time"

type Job struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CompanyID string `gorm:"column:company_id;type:uuid;index" json:"company_id"`

	Title        string  `gorm:"column:title;type:text" json:"title"`
	Description  string  `gorm:"column:description;type:text" json:"description"`
	Requirements string  `gorm:"column:requirements;type:text" json:"requirements"`
	Location     string  `gorm:"column:location;type:text" json:"location"`
	Salary       float64 `gorm:"column:salary;type:numeric(10,2)" json:"salary"`

	Deadline   time.Time `gorm:"column:deadline;type:date" json:"deadline"`
	PostedDate time.Time `gorm:"column:posted_date;type:timestamptz" json:"posted_date"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`

	// deleting a company takes its jobs with it
	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
}

func (Job) TableName() string { return "jobs" }

// IsActive is derived from the deadline, never stored.
func (j *Job) IsActive() bool {
	return j.Deadline.After(truncateToDay(time.Now().UTC()))
}

// IsActiveAt reports whether the deadline is strictly after the given day.
func (j *Job) IsActiveAt(day time.Time) bool {
	return j.Deadline.After(truncateToDay(day))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
