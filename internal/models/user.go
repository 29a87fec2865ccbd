package models

import "time"

type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobseeker Role = "jobseeker"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleJobseeker
}

type User struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username     string `gorm:"column:username;type:text;uniqueIndex" json:"username"`
	Email        string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`

	IsStaff     bool `gorm:"column:is_staff" json:"is_staff"`
	IsSuperuser bool `gorm:"column:is_superuser" json:"is_superuser"`
	IsActive    bool `gorm:"column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (User) TableName() string { return "users" }
