package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogMailer records outgoing mail instead of delivering it. It stands in for
// a real transport in development and tests.
type LogMailer struct {
	Logger *logrus.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	log := m.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("mail send")
	return nil
}
