package workers

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jobport/jobport/internal/mailer"
)

const DefaultMailStream = "mail:stream"

// RedisMailQueue is the producing end of the mail stream; the alert engine
// enqueues here and MailWorkerPool consumes.
type RedisMailQueue struct {
	Redis  *redis.Client
	Stream string
}

func (q *RedisMailQueue) Enqueue(ctx context.Context, m mailer.Message) error {
	stream := q.Stream
	if stream == "" {
		stream = DefaultMailStream
	}
	return q.Redis.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"to":      m.To,
			"subject": m.Subject,
			"body":    m.Body,
		},
	}).Err()
}
