package usecase

import (
	"context"

	"delacream-park/internal/domain/booking"
)

// ContactMessage is a contact form submission passed to the notifier.
type ContactMessage struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
}

// Notifier renders and dispatches outbound HTML mail. Implementations are
// expected to block until the transport accepts or rejects the message;
// whether a failure is fatal is decided per call site.
type Notifier interface {
	BookingConfirmation(ctx context.Context, b *booking.Booking) error
	ContactReceived(ctx context.Context, m ContactMessage) error
	ContactAcknowledgement(ctx context.Context, m ContactMessage) error
	NewsletterWelcome(ctx context.Context, email string) error
	NewsletterIssue(ctx context.Context, to, subject, contentHTML string) error
}
