package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobAlertNotification is written only by the alert engine. The unique
// (job_id, alert_id) index makes a repeated fan-out for the same job a no-op.
type JobAlertNotification struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	JobID   string             `bson:"job_id" json:"job_id"`
	AlertID string             `bson:"alert_id" json:"alert_id"`

	Message string `bson:"message" json:"message"`
	IsRead  bool   `bson:"is_read" json:"is_read"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
