package email

import (
	"context"

	"flightdesk/internal/notify"
	"flightdesk/pkg/logger"
)

// Sender turns consumed notification events into outbound mail. Delivery is
// a log-only stand-in; SMTP wiring is a deployment concern.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event notify.Event) error {
	s.log.Info("sending notification mail", "event", event.Name, "payload", event.Payload)
	return nil
}
