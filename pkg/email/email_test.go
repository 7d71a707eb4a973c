package email_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport(t *testing.T) {
	t.Run("Should build SMTP when credentials are present", func(t *testing.T) {
		tr, err := email.NewTransport(&config.Config{
			MailProvider: "smtp",
			SMTPHost:     "smtp.example.net",
			SMTPPort:     "587",
			SMTPUsername: "mailer",
			SMTPPassword: "secret",
			FromEmail:    "mailer@example.net",
			ContactEmail: "owner@example.net",
		})
		require.NoError(t, err)
		assert.IsType(t, &email.SMTPTransport{}, tr)
		assert.Implements(t, (*email.Verifier)(nil), tr)
	})

	t.Run("Should build Mailgun", func(t *testing.T) {
		tr, err := email.NewTransport(&config.Config{
			MailProvider:  "mailgun",
			MailgunDomain: "mg.example.net",
			MailgunAPIKey: "key-123",
			FromEmail:     "mailer@example.net",
			ContactEmail:  "owner@example.net",
		})
		require.NoError(t, err)
		assert.IsType(t, &email.MailgunTransport{}, tr)
	})

	tests := map[string]*config.Config{
		"smtp without password": {MailProvider: "smtp", SMTPHost: "smtp.example.net", SMTPUsername: "mailer"},
		"mailgun without key":   {MailProvider: "mailgun", MailgunDomain: "mg.example.net"},
		"unknown provider":      {MailProvider: "carrier-pigeon"},
		"mailgun without sender": {
			MailProvider:  "mailgun",
			MailgunDomain: "mg.example.net",
			MailgunAPIKey: "key-123",
			ContactEmail:  "owner@example.net",
		},
		"smtp without recipient": {
			MailProvider: "smtp",
			SMTPHost:     "smtp.example.net",
			SMTPUsername: "mailer",
			SMTPPassword: "secret",
			FromEmail:    "mailer@example.net",
		},
	}
	for name, cfg := range tests {
		t.Run("Should report not configured: "+name, func(t *testing.T) {
			_, err := email.NewTransport(cfg)
			assert.ErrorIs(t, err, email.ErrNotConfigured)
		})
	}
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("EMAIL_PASS missing")
	tr := email.Unavailable(cause)

	id, err := tr.Send(context.Background(), &domain.EmailPayload{})

	assert.Empty(t, id)
	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
	assert.Contains(t, err.Error(), "EMAIL_PASS missing")
}
