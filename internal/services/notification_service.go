package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobport/jobport/internal/authz"
	"github.com/jobport/jobport/internal/cache"
	"github.com/jobport/jobport/internal/models"
	mongorepo "github.com/jobport/jobport/internal/repositories/mongo"
	"github.com/jobport/jobport/internal/utils"
)

const unreadCountTTL = 30 * time.Second

func unreadCountKey(userID string) string { return "notif:unread:" + userID }

type NotificationService interface {
	// List returns the inbox newest first. A full listing (unreadOnly=false)
	// marks the returned unread notifications read, mirroring the
	// view-triggered side effect of opening the inbox; anything arriving
	// after the fetch stays unread for the next view.
	List(ctx context.Context, sub authz.Subject, unreadOnly bool) ([]models.JobAlertNotification, error)
	MarkRead(ctx context.Context, sub authz.Subject, id string) error
	UnreadCount(ctx context.Context, sub authz.Subject) (int64, error)
	// InvalidateUnread drops the cached unread count; the alert engine calls
	// it after fan-out writes.
	InvalidateUnread(ctx context.Context, userID string) error
}

type notificationService struct {
	notifications mongorepo.NotificationRepository
	cache         cache.Cache // optional
}

func NewNotificationService(notifications mongorepo.NotificationRepository, c cache.Cache) NotificationService {
	return &notificationService{notifications: notifications, cache: c}
}

func (s *notificationService) List(ctx context.Context, sub authz.Subject, unreadOnly bool) ([]models.JobAlertNotification, error) {
	const op = "NotificationService.List"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return nil, err
	}

	out, err := s.notifications.ListByUser(ctx, sub.UserID, unreadOnly)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list notifications", err)
	}

	if !unreadOnly {
		var unread []primitive.ObjectID
		for _, n := range out {
			if !n.IsRead {
				unread = append(unread, n.ID)
			}
		}
		if len(unread) > 0 {
			if _, err := s.notifications.MarkManyRead(ctx, sub.UserID, unread); err != nil {
				return nil, utils.E(utils.CodeInternal, op, "failed to mark notifications read", err)
			}
			s.invalidate(ctx, sub.UserID)
		}
	}
	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, sub authz.Subject, id string) error {
	const op = "NotificationService.MarkRead"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return err
	}
	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "notification id is required", nil)
	}

	// the repo filters on the owner, so a foreign notification reads as
	// missing rather than forbidden
	if err := s.notifications.MarkRead(ctx, sub.UserID, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "notification not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to mark notification read", err)
	}
	s.invalidate(ctx, sub.UserID)
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, sub authz.Subject) (int64, error) {
	const op = "NotificationService.UnreadCount"

	if err := authz.CanAccess(sub, models.RoleJobseeker); err != nil {
		return 0, err
	}

	if s.cache != nil {
		var cached int64
		if hit, err := s.cache.GetJSON(ctx, unreadCountKey(sub.UserID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	count, err := s.notifications.CountUnread(ctx, sub.UserID)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to count unread notifications", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, unreadCountKey(sub.UserID), count, unreadCountTTL)
	}
	return count, nil
}

// InvalidateUnread implements the engine's UnreadInvalidator hook.
func (s *notificationService) InvalidateUnread(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, unreadCountKey(userID))
}

func (s *notificationService) invalidate(ctx context.Context, userID string) {
	_ = s.InvalidateUnread(ctx, userID)
}
