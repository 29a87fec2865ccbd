package models

import "time"

// Profile is created in the same transaction as its User; every active
// user carries exactly one profile with an assigned role.
type Profile struct {
	UserID     string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Role       Role   `gorm:"column:role;type:text" json:"role"`
	Phone      string `gorm:"column:phone;type:text" json:"phone"`
	Location   string `gorm:"column:location;type:text" json:"location"`
	AvatarPath string `gorm:"column:avatar_path;type:text" json:"avatar_path,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
