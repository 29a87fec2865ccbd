package mailer

import "context"

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Provider delivers alert emails. Delivery is advisory: callers never treat a
// send failure as fatal.
type Provider interface {
	Send(ctx context.Context, m Message) error
}
