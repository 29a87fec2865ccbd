// Package notify pushes freshly created notifications over Redis pub/sub so
// the websocket feed can deliver them live.
package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/jobport/jobport/internal/models"
)

// UserChannel is the pub/sub channel carrying one user's notifications.
func UserChannel(userID string) string {
	return "user:" + userID + ":notifications"
}

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, n *models.JobAlertNotification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, UserChannel(n.UserID), b).Err()
}
