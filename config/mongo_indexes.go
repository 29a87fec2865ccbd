package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notifications := MongoDatabase().Collection("job_alert_notifications")
	_, err := notifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// a job fans out to each alert at most once
		{
			Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "alert_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_job_alert").
				SetUnique(true),
		},
		// inbox listing, newest first
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_user_created"),
		},
		// unread count
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}},
			Options: options.Index().SetName("by_user_read"),
		},
	})
	return err
}
