package models

import "time"

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

// Application links one Job and one applicant. The (job_id, applicant_id)
// unique index is the backstop against concurrent duplicate submissions.
type Application struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID       string `gorm:"column:job_id;type:uuid;uniqueIndex:uniq_job_applicant" json:"job_id"`
	ApplicantID string `gorm:"column:applicant_id;type:uuid;uniqueIndex:uniq_job_applicant" json:"applicant_id"`

	ResumePath  string            `gorm:"column:resume_path;type:text" json:"resume_path"`
	CoverLetter string            `gorm:"column:cover_letter;type:text" json:"cover_letter,omitempty"`
	Status      ApplicationStatus `gorm:"column:status;type:text" json:"status"`

	AppliedDate time.Time `gorm:"column:applied_date;type:timestamptz" json:"applied_date"`

	// deleting a job takes its applications with it
	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}

func (Application) TableName() string { return "applications" }
