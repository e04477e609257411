package mailer

import (
	"context"
	"log"
)

// LogMailer writes messages to the log instead of sending them. Used when
// no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	log.Printf("📧 SMTP not configured, mail to %s (%s):\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}
