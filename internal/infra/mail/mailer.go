// Package mail is the outbound SMTP boundary. Rendering lives in
// internal/infra/notify; this package only moves finished messages.
package mail

import "context"

type Message struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
