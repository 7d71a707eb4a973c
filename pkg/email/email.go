// Package email renders contact form emails and delivers them through SMTP
// or Mailgun.
package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"
)

// ErrNotConfigured is returned by NewTransport when credentials are missing
var ErrNotConfigured = domain.ErrMailNotConfigured

// Verifier is implemented by transports that can check their connection at startup
type Verifier interface {
	Verify(ctx context.Context) error
}

// NewTransport builds the transport selected by MAIL_PROVIDER.
// Missing credentials or addresses yield an error wrapping ErrNotConfigured.
func NewTransport(cfg *config.Config) (domain.MailTransport, error) {
	var transport domain.MailTransport
	switch strings.ToLower(cfg.MailProvider) {
	case "", "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			return nil, fmt.Errorf("%w: EMAIL_HOST, EMAIL_USER and EMAIL_PASS are required", ErrNotConfigured)
		}
		transport = NewSMTPTransport(SMTPConfig{
			Host:               cfg.SMTPHost,
			Port:               cfg.SMTPPort,
			Username:           cfg.SMTPUsername,
			Password:           cfg.SMTPPassword,
			Secure:             cfg.SMTPSecure,
			StartTLS:           cfg.SMTPStartTLS,
			InsecureSkipVerify: cfg.SMTPInsecureSkipVerify,
			LocalName:          cfg.SMTPLocalName,
			Timeout:            cfg.MailSendTimeout,
		})
	case "mailgun":
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
			return nil, fmt.Errorf("%w: MAILGUN_DOMAIN and MAILGUN_API_KEY are required", ErrNotConfigured)
		}
		transport = NewMailgunTransport(cfg.MailgunDomain, cfg.MailgunAPIKey)
	default:
		return nil, fmt.Errorf("%w: unknown MAIL_PROVIDER %q", ErrNotConfigured, cfg.MailProvider)
	}

	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, fmt.Errorf("%w: EMAIL_FROM or EMAIL_USER is required as the sender address", ErrNotConfigured)
	}
	if strings.TrimSpace(cfg.ContactEmail) == "" {
		return nil, fmt.Errorf("%w: CONTACT_EMAIL is required", ErrNotConfigured)
	}
	return transport, nil
}

// TemplatesFromConfig collects the template constants from configuration
func TemplatesFromConfig(cfg *config.Config) Templates {
	return Templates{
		OwnerName:    cfg.OwnerName,
		OwnerTitle:   cfg.OwnerTitle,
		SiteName:     cfg.SiteName,
		FromName:     cfg.FromName,
		FromAddress:  cfg.FromEmail,
		ContactEmail: cfg.ContactEmail,
	}
}

type unavailable struct {
	err error
}

// Unavailable returns a transport that refuses every send with err.
// The returned errors always match domain.ErrMailNotConfigured.
func Unavailable(err error) domain.MailTransport {
	if err == nil || !errors.Is(err, domain.ErrMailNotConfigured) {
		err = fmt.Errorf("%w: %v", domain.ErrMailNotConfigured, err)
	}
	return unavailable{err: err}
}

func (u unavailable) Send(context.Context, *domain.EmailPayload) (string, error) {
	return "", u.err
}
