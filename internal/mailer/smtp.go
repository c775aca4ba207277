package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPMailer delivers digests through an authenticated STARTTLS SMTP
// session.
type SMTPMailer struct {
	from   string
	client *mail.Client
}

// NewSMTPMailer configures an SMTP client with plain authentication.
func NewSMTPMailer(server string, port int, from, login, password string) (*SMTPMailer, error) {
	client, err := mail.NewClient(server,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(login),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure smtp client: %w", err)
	}
	return &SMTPMailer{from: from, client: client}, nil
}

var _ Mailer = (*SMTPMailer)(nil)

// SendDigest builds a plain-text message and performs the SMTP round-trip
// bounded by the context deadline.
func (m *SMTPMailer) SendDigest(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}
