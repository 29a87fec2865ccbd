package workers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jobport/jobport/internal/mailer"
)

// MailWorkerPool drains the mail stream and hands each message to the
// configured provider. Delivery is best-effort: failures are logged, the
// entry is acked either way, and nothing upstream is retried.
type MailWorkerPool struct {
	Redis      *redis.Client
	Provider   mailer.Provider
	NumWorkers int

	Logger *logrus.Logger

	Stream         string
	Group          string
	ConsumerPrefix string
}

func (p *MailWorkerPool) Start(ctx context.Context) error {
	if p.Redis == nil || p.Provider == nil {
		return errors.New("MailWorkerPool missing dependency: Redis and Provider must be set")
	}
	if p.Stream == "" {
		p.Stream = DefaultMailStream
	}
	if p.Group == "" {
		p.Group = "mail-workers"
	}
	if p.ConsumerPrefix == "" {
		p.ConsumerPrefix = "m"
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.Logger == nil {
		p.Logger = logrus.New()
	}

	_ = p.Redis.XGroupCreateMkStream(ctx, p.Stream, p.Group, "0").Err() // ignore BUSYGROUP

	for i := 0; i < p.NumWorkers; i++ {
		consumer := p.ConsumerPrefix + "-" + strconv.Itoa(i+1)
		go p.runConsumer(ctx, consumer)
	}
	return nil
}

func (p *MailWorkerPool) runConsumer(ctx context.Context, consumer string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.Redis.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    p.Group,
			Consumer: consumer,
			Streams:  []string{p.Stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()

		if err != nil {
			if err == redis.Nil {
				continue
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				p.handleMsg(ctx, msg)
				_ = p.Redis.XAck(ctx, p.Stream, p.Group, msg.ID).Err()
			}
		}
	}
}

func (p *MailWorkerPool) handleMsg(ctx context.Context, msg redis.XMessage) {
	getStr := func(k string) string {
		v, ok := msg.Values[k]
		if !ok || v == nil {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	m := mailer.Message{
		To:      getStr("to"),
		Subject: getStr("subject"),
		Body:    getStr("body"),
	}
	if m.To == "" {
		return
	}

	log := p.Logger.WithFields(logrus.Fields{
		"redis_id": msg.ID,
		"to":       m.To,
	})

	if err := p.Provider.Send(ctx, m); err != nil {
		log.WithError(err).Warn("mail delivery failed")
		return
	}
	log.Debug("mail delivered")
}
