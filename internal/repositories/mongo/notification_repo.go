package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type NotificationRepository interface {
	// Insert returns utils.ErrDuplicate when a notification for the same
	// (job, alert) pair already exists; the unique index makes a repeated
	// fan-out for one job idempotent.
	Insert(ctx context.Context, n *models.JobAlertNotification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.JobAlertNotification, error)
	MarkRead(ctx context.Context, userID, id string) error
	// MarkManyRead flips exactly the given notifications; a row inserted
	// after the caller's fetch is left unread so it still gets listed.
	MarkManyRead(ctx context.Context, userID string, ids []primitive.ObjectID) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type notificationRepo struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepository {
	return &notificationRepo{col: db.Collection("job_alert_notifications")}
}

func (r *notificationRepo) Insert(ctx context.Context, n *models.JobAlertNotification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, n)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid
	}
	return nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.JobAlertNotification, error) {
	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["is_read"] = false
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.JobAlertNotification
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead filters on user_id as well as _id, so another user's notification
// is indistinguishable from a missing one.
func (r *notificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) MarkManyRead(ctx context.Context, userID string, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
}
