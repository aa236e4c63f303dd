// Package notify renders the site's outbound HTML mail and hands it to the
// SMTP boundary. One method per template kind.
package notify

import (
	"context"
	"html/template"
	"strings"

	"delacream-park/internal/domain/booking"
	"delacream-park/internal/infra/mail"
	"delacream-park/internal/metrics"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

type Notifier struct {
	mailer mail.Mailer
	cfg    config.SMTPConfig
}

func New(mailer mail.Mailer, cfg config.SMTPConfig) *Notifier {
	return &Notifier{mailer: mailer, cfg: cfg}
}

var _ usecase.Notifier = (*Notifier)(nil)

func (n *Notifier) BookingConfirmation(ctx context.Context, b *booking.Booking) error {
	var (
		subject string
		body    string
		err     error
	)

	switch b.Type {
	case booking.TypeHotel:
		subject = "Hotel Booking Inquiry Received"
		body, err = render(hotelConfirmationTmpl, map[string]any{
			"Name":     b.Name,
			"CheckIn":  b.CheckIn.Format("January 2, 2006"),
			"CheckOut": b.CheckOut.Format("January 2, 2006"),
			"Adults":   b.Adults,
			"Children": b.Children,
			"RoomType": b.RoomType.String(),
		})
	default:
		subject = "Restaurant Reservation Confirmation"
		requests := b.SpecialRequests
		if requests == "" {
			requests = "None"
		}
		body, err = render(restaurantConfirmationTmpl, map[string]any{
			"Name":            b.Name,
			"Date":            b.Date.Format("January 2, 2006"),
			"Time":            b.Time,
			"Guests":          b.Guests,
			"SpecialRequests": requests,
		})
	}
	if err != nil {
		return err
	}

	err = n.mailer.Send(ctx, mail.Message{To: b.Email, Subject: subject, HTML: body})
	metrics.RecordMail("booking_confirmation", err)
	return err
}

func (n *Notifier) ContactReceived(ctx context.Context, m usecase.ContactMessage) error {
	phone := m.Phone
	if phone == "" {
		phone = "Not provided"
	}
	body, err := render(contactReceivedTmpl, map[string]any{
		"FirstName": m.FirstName,
		"LastName":  m.LastName,
		"Email":     m.Email,
		"Phone":     phone,
		"Subject":   m.Subject,
		"Message":   m.Message,
	})
	if err != nil {
		return err
	}

	err = n.mailer.Send(ctx, mail.Message{
		To:      n.cfg.ContactEmail,
		Subject: "Contact Form: " + m.Subject,
		HTML:    body,
		ReplyTo: m.Email,
	})
	metrics.RecordMail("contact_received", err)
	return err
}

func (n *Notifier) ContactAcknowledgement(ctx context.Context, m usecase.ContactMessage) error {
	body, err := render(contactAckTmpl, map[string]any{
		"FirstName": m.FirstName,
		"Message":   m.Message,
	})
	if err != nil {
		return err
	}

	err = n.mailer.Send(ctx, mail.Message{
		To:      m.Email,
		Subject: "Thank you for contacting De La Cream Business Park",
		HTML:    body,
	})
	metrics.RecordMail("contact_ack", err)
	return err
}

func (n *Notifier) NewsletterWelcome(ctx context.Context, email string) error {
	body, err := render(newsletterWelcomeTmpl, nil)
	if err != nil {
		return err
	}

	err = n.mailer.Send(ctx, mail.Message{
		To:      email,
		Subject: "Welcome to De La Cream Business Park Newsletter",
		HTML:    body,
	})
	metrics.RecordMail("newsletter_welcome", err)
	return err
}

// NewsletterIssue wraps admin-authored HTML in the branded frame. The
// content comes from the authenticated admin, so it is trusted markup.
func (n *Notifier) NewsletterIssue(ctx context.Context, to, subject, contentHTML string) error {
	body, err := render(newsletterIssueTmpl, map[string]any{
		"Content": template.HTML(contentHTML),
	})
	if err != nil {
		return err
	}

	err = n.mailer.Send(ctx, mail.Message{To: to, Subject: subject, HTML: body})
	metrics.RecordMail("newsletter_issue", err)
	return err
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", errs.Wrap(err, "failed to render mail template")
	}
	return b.String(), nil
}

var restaurantConfirmationTmpl = template.Must(template.New("restaurant-confirmation").Parse(`
<h2>Restaurant Reservation Confirmation</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for your reservation at De La Cream Restaurant.</p>
<p><strong>Reservation Details:</strong></p>
<ul>
  <li>Date: {{.Date}}</li>
  <li>Time: {{.Time}}</li>
  <li>Number of Guests: {{.Guests}}</li>
  <li>Special Requests: {{.SpecialRequests}}</li>
</ul>
<p>We will contact you shortly to confirm your reservation.</p>
<p>Best regards,<br>De La Cream Restaurant Team</p>
`))

var hotelConfirmationTmpl = template.Must(template.New("hotel-confirmation").Parse(`
<h2>Hotel Booking Inquiry Received</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for your booking inquiry at De La Cream Hotel.</p>
<p><strong>Inquiry Details:</strong></p>
<ul>
  <li>Check-in: {{.CheckIn}}</li>
  <li>Check-out: {{.CheckOut}}</li>
  <li>Adults: {{.Adults}}</li>
  <li>Children: {{.Children}}</li>
  <li>Room Type: {{.RoomType}}</li>
</ul>
<p>We will contact you with availability and pricing.</p>
<p>Best regards,<br>De La Cream Hotel Team</p>
`))

var contactReceivedTmpl = template.Must(template.New("contact-received").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Sent from De La Cream Business Park website</small></p>
`))

var contactAckTmpl = template.Must(template.New("contact-ack").Parse(`
<h2>Thank you for your inquiry!</h2>
<p>Dear {{.FirstName}},</p>
<p>We have received your message and will get back to you within 24 hours.</p>
<p><strong>Your message:</strong></p>
<p>{{.Message}}</p>
<br>
<p>Best regards,<br>De La Cream Business Park Team</p>
<p>Phone: +254 720 206 142<br>Email: info@delacream.co.ke</p>
`))

var newsletterWelcomeTmpl = template.Must(template.New("newsletter-welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #f2760a;">Welcome to De La Cream Business Park!</h2>
  <p>Thank you for subscribing to our newsletter. You'll now receive:</p>
  <ul>
    <li>Latest updates about our facilities</li>
    <li>Special offers and promotions</li>
    <li>Event announcements</li>
    <li>Business tips and insights</li>
  </ul>
  <p>We're excited to keep you informed about everything happening at De La Cream Business Park.</p>
  <hr style="margin: 20px 0;">
  <p style="color: #666; font-size: 12px;">
    If you no longer wish to receive these emails, you can unsubscribe at any time.
  </p>
  <p style="color: #666; font-size: 12px;">
    De La Cream Business Park<br>
    Nairobi, Kenya<br>
    Phone: +254 720 206 142
  </p>
</div>
`))

var newsletterIssueTmpl = template.Must(template.New("newsletter-issue").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #f2760a; color: white; padding: 20px; text-align: center;">
    <h1>De La Cream Business Park</h1>
  </div>
  <div style="padding: 20px;">
    {{.Content}}
  </div>
  <div style="background: #f5f5f5; padding: 15px; text-align: center; font-size: 12px; color: #666;">
    <p>You received this email because you subscribed to our newsletter.</p>
    <p>De La Cream Business Park | Nairobi, Kenya | +254 720 206 142</p>
  </div>
</div>
`))
