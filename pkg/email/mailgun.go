package email

import (
	"context"

	"portfolio-contact-backend/internal/domain"

	"github.com/pkg/errors"
	mailgun "gopkg.in/mailgun/mailgun-go.v1"
)

// mailgunSender is the part of mailgun.Mailgun used for sending
type mailgunSender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(m *mailgun.Message) (string, string, error)
}

// MailgunTransport sends through the Mailgun HTTP API
type MailgunTransport struct {
	mg mailgunSender
}

var _ domain.MailTransport = (*MailgunTransport)(nil)

// NewMailgunTransport creates a Mailgun transport for the given sending domain
func NewMailgunTransport(domainName, apiKey string) *MailgunTransport {
	return &MailgunTransport{
		mg: mailgun.NewMailgun(domainName, apiKey, ""),
	}
}

// Send implements domain.MailTransport. The Mailgun client takes no context,
// so cancellation is only honoured before the request starts.
func (m *MailgunTransport) Send(ctx context.Context, p *domain.EmailPayload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "mailgun: send cancelled")
	}

	msg := m.mg.NewMessage(p.From.String(), p.Subject, p.Text, p.To.String())
	msg.SetHtml(p.HTML)
	if p.ReplyTo != nil {
		msg.AddHeader("Reply-To", p.ReplyTo.String())
	}

	_, id, err := m.mg.Send(msg)
	if err != nil {
		return "", errors.Wrap(err, "mailgun: send failed")
	}
	return id, nil
}
