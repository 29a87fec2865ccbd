package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jobport/jobport/internal/mailer"
	"github.com/jobport/jobport/internal/matching"
	"github.com/jobport/jobport/internal/models"
	mongorepo "github.com/jobport/jobport/internal/repositories/mongo"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

// NotificationResult reports the outcome of one alert evaluation during
// fan-out.
type NotificationResult struct {
	AlertID   string `json:"alert_id"`
	UserID    string `json:"user_id"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`
}

// MailQueue accepts best-effort outbound mail. Enqueue failures are logged
// and dropped; in-app notifications are the source of truth.
type MailQueue interface {
	Enqueue(ctx context.Context, m mailer.Message) error
}

// NotificationPublisher pushes a freshly created notification to any live
// subscriber (the websocket feed).
type NotificationPublisher interface {
	Publish(ctx context.Context, n *models.JobAlertNotification) error
}

// UnreadInvalidator drops the cached unread count for a user after fan-out
// writes new rows.
type UnreadInvalidator interface {
	InvalidateUnread(ctx context.Context, userID string) error
}

// AlertEngine fans a newly created job out to every matching alert. It runs
// inline with job creation; failures here never surface to the poster.
type AlertEngine interface {
	OnJobCreated(ctx context.Context, job *models.Job) []NotificationResult
}

type alertEngine struct {
	alerts        pgrepo.AlertRepository
	users         pgrepo.UserRepository
	notifications mongorepo.NotificationRepository

	mail      MailQueue             // optional
	publisher NotificationPublisher // optional
	unread    UnreadInvalidator     // optional

	log *logrus.Logger
}

func NewAlertEngine(
	alerts pgrepo.AlertRepository,
	users pgrepo.UserRepository,
	notifications mongorepo.NotificationRepository,
	mail MailQueue,
	publisher NotificationPublisher,
	unread UnreadInvalidator,
	log *logrus.Logger,
) AlertEngine {
	if log == nil {
		log = logrus.New()
	}
	return &alertEngine{
		alerts:        alerts,
		users:         users,
		notifications: notifications,
		mail:          mail,
		publisher:     publisher,
		unread:        unread,
		log:           log,
	}
}

func (e *alertEngine) OnJobCreated(ctx context.Context, job *models.Job) []NotificationResult {
	alerts, err := e.alerts.ListAll(ctx)
	if err != nil {
		e.log.WithError(err).WithField("job_id", job.ID).Error("alert scan failed")
		return nil
	}

	var results []NotificationResult
	for i := range alerts {
		alert := &alerts[i]
		if !matching.Matches(alert.Keyword, alert.Location, job.Title, job.Description, job.Location) {
			continue
		}
		results = append(results, e.notify(ctx, alert, job))
	}

	if n := succeededCount(results); n > 0 {
		e.log.WithFields(logrus.Fields{
			"job_id": job.ID,
			"title":  job.Title,
			"count":  n,
		}).Info("job alert notifications sent")
	}
	return results
}

// notify emits the in-app notification for one matched alert, then the
// advisory side channels. Errors stay scoped to this alert.
func (e *alertEngine) notify(ctx context.Context, alert *models.JobAlert, job *models.Job) NotificationResult {
	res := NotificationResult{AlertID: alert.ID, UserID: alert.UserID}
	log := e.log.WithFields(logrus.Fields{
		"alert_id": alert.ID,
		"user_id":  alert.UserID,
		"job_id":   job.ID,
	})

	companyName := ""
	if job.Company != nil {
		companyName = job.Company.Name
	}

	n := &models.JobAlertNotification{
		UserID:    alert.UserID,
		JobID:     job.ID,
		AlertID:   alert.ID,
		Message:   fmt.Sprintf("New job alert match: %s at %s in %s", job.Title, companyName, job.Location),
		CreatedAt: time.Now().UTC(),
	}

	if err := e.notifications.Insert(ctx, n); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			// this (job, alert) pair was already notified; re-runs are no-ops
			log.Debug("notification already exists")
			return res
		}
		log.WithError(err).Error("failed to create notification")
		res.Error = err.Error()
		return res
	}
	res.Succeeded = true

	if e.unread != nil {
		if err := e.unread.InvalidateUnread(ctx, alert.UserID); err != nil {
			log.WithError(err).Warn("failed to invalidate unread count")
		}
	}
	if e.publisher != nil {
		if err := e.publisher.Publish(ctx, n); err != nil {
			log.WithError(err).Warn("failed to publish notification")
		}
	}
	e.sendMail(ctx, alert, job, companyName, log)

	return res
}

func (e *alertEngine) sendMail(ctx context.Context, alert *models.JobAlert, job *models.Job, companyName string, log *logrus.Entry) {
	if e.mail == nil {
		return
	}

	u, err := e.users.GetByID(ctx, alert.UserID)
	if err != nil || u.Email == "" {
		if err != nil {
			log.WithError(err).Warn("failed to load alert owner for email")
		}
		return
	}

	msg := mailer.Message{
		To:      u.Email,
		Subject: fmt.Sprintf("Job Alert: %s at %s", job.Title, companyName),
		Body: fmt.Sprintf(
			"Hi %s,\n\nA new job matching your alert %q in %q has been posted:\n\nJob Title: %s\nCompany: %s\nLocation: %s\nSalary: $%.2f\n",
			u.Username, alert.Keyword, alert.Location,
			job.Title, companyName, job.Location, job.Salary,
		),
	}
	if err := e.mail.Enqueue(ctx, msg); err != nil {
		log.WithError(err).Warn("failed to enqueue alert email")
	}
}

func succeededCount(results []NotificationResult) int {
	n := 0
	for _, r := range results {
		if r.Succeeded {
			n++
		}
	}
	return n
}
