//go:build unit

package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"delacream-park/internal/pkg/config"
)

func testSMTPConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		FromName:  "De La Cream Business Park",
		FromEmail: "noreply@delacream.co.ke",
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	m := NewSMTPMailer(testSMTPConfig())

	raw := m.buildMessage(Message{
		To:      "guest@example.com",
		Subject: "Restaurant Reservation Confirmation",
		HTML:    "<p>hello</p>",
	})

	head, body, found := strings.Cut(raw, "\r\n\r\n")
	assert.True(t, found, "headers and body must be separated by a blank line")

	assert.Contains(t, head, `From: "De La Cream Business Park" <noreply@delacream.co.ke>`)
	assert.Contains(t, head, "To: guest@example.com")
	assert.Contains(t, head, "Subject: Restaurant Reservation Confirmation")
	assert.Contains(t, head, "MIME-Version: 1.0")
	assert.Contains(t, head, "Content-Type: text/html; charset=UTF-8")
	assert.NotContains(t, head, "Reply-To:")
	assert.Equal(t, "<p>hello</p>\r\n", body)
}

func TestBuildMessageReplyTo(t *testing.T) {
	m := NewSMTPMailer(testSMTPConfig())

	raw := m.buildMessage(Message{
		To:      "info@delacream.co.ke",
		Subject: "Contact Form: Leasing",
		HTML:    "<p>question</p>",
		ReplyTo: "visitor@example.com",
	})

	assert.Contains(t, raw, "Reply-To: visitor@example.com\r\n")
}

func TestBuildMessageCRLFLineEndings(t *testing.T) {
	m := NewSMTPMailer(testSMTPConfig())

	raw := m.buildMessage(Message{To: "a@b.c", Subject: "s", HTML: "x"})

	for _, line := range strings.Split(raw, "\r\n") {
		assert.NotContains(t, line, "\n", "bare LF is not allowed in SMTP payload")
	}
}
