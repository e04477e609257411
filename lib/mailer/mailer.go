// Package mailer delivers transactional email such as signup codes.
package mailer

import "context"

// Message is a plain-text email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a message or reports why it could not
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
