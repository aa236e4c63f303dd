package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
)

type SMTPMailer struct {
	cfg         config.SMTPConfig
	dialTimeout time.Duration
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:         cfg,
		dialTimeout: 30 * time.Second,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	dialer := &net.Dialer{Timeout: m.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.cfg.Addr())
	if err != nil {
		return errs.Wrap(err, "failed to connect to SMTP server")
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return errs.Wrap(err, "failed to create SMTP client")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return errs.Wrap(err, "STARTTLS failed")
		}
	}

	if m.cfg.User != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errs.Wrap(err, "SMTP authentication failed")
		}
	}

	if err := client.Mail(m.cfg.FromEmail); err != nil {
		return errs.Wrap(err, "MAIL FROM rejected")
	}
	if err := client.Rcpt(msg.To); err != nil {
		return errs.Wrap(err, "RCPT TO rejected")
	}

	w, err := client.Data()
	if err != nil {
		return errs.Wrap(err, "DATA command failed")
	}
	if _, err := w.Write([]byte(m.buildMessage(msg))); err != nil {
		return errs.Wrap(err, "failed to write message body")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "failed to finish message body")
	}

	return client.Quit()
}

func (m *SMTPMailer) buildMessage(msg Message) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %q <%s>\r\n", m.cfg.FromName, m.cfg.FromEmail))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	if msg.ReplyTo != "" {
		b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo))
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	return b.String()
}
