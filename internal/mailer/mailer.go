// Package mailer delivers standup digests over SMTP.
package mailer

import (
	"context"
	"errors"
)

// Mailer is the outbound email boundary. Implementations must honor the
// context deadline; the session engine treats any error, timeout included,
// as a delivery failure and keeps the session for retry.
type Mailer interface {
	SendDigest(ctx context.Context, to, subject, body string) error
}

// Disabled is the Mailer used when no SMTP configuration was provided. Every
// send fails, which keeps sessions intact until an operator configures SMTP
// and retries.
type Disabled struct{}

// SendDigest always fails.
func (Disabled) SendDigest(context.Context, string, string, string) error {
	return errors.New("smtp is not configured")
}
