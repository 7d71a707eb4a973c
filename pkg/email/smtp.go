package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	"portfolio-contact-backend/internal/domain"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/jhillyerd/enmime"
)

const defaultSendTimeout = 30 * time.Second

// SMTPConfig describes one SMTP submission server
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	// Secure selects implicit TLS (port 465 style). StartTLS requires the
	// server to upgrade a plain connection and is ignored when Secure is set.
	Secure             bool
	StartTLS           bool
	InsecureSkipVerify bool
	LocalName          string
	Timeout            time.Duration
}

// SMTPTransport sends each payload over its own SMTP connection
type SMTPTransport struct {
	cfg       SMTPConfig
	tlsConfig *tls.Config
	now       func() time.Time
}

var _ domain.MailTransport = (*SMTPTransport)(nil)

// NewSMTPTransport creates a transport; no connection is made until Send or Verify
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSendTimeout
	}
	return &SMTPTransport{
		cfg: cfg,
		tlsConfig: &tls.Config{
			ServerName:         cfg.Host,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			MinVersion:         tls.VersionTLS12,
		},
		now: time.Now,
	}
}

// Send delivers the payload and returns the Message-ID it was sent with
func (t *SMTPTransport) Send(ctx context.Context, p *domain.EmailPayload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	messageID := newMessageID(p.From.Email)
	msg, err := buildMIME(p, messageID, t.now())
	if err != nil {
		return "", err
	}

	c, err := t.connect(ctx)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if err := c.SendMail(p.From.Email, []string{p.To.Email}, bytes.NewReader(msg)); err != nil {
		return "", fmt.Errorf("smtp: send to %s: %w", p.To.Email, err)
	}
	// The message is accepted once DATA completes; a failed QUIT does not undo it.
	_ = c.Quit()

	return messageID, nil
}

// Verify connects, authenticates and disconnects. Used once at startup.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	c, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Noop(); err != nil {
		return fmt.Errorf("smtp: noop: %w", err)
	}
	return c.Quit()
}

// connect dials, upgrades to TLS when configured and authenticates
func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.cfg.Host, t.cfg.Port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("smtp: dial %s: %w", addr, err)
	}
	if t.cfg.Secure {
		conn = tls.Client(conn, t.tlsConfig)
	}

	// Close the connection if the caller gives up mid-conversation
	stop := context.AfterFunc(ctx, func() { conn.Close() })

	var c *smtp.Client
	if t.cfg.StartTLS && !t.cfg.Secure {
		// NewClientStartTLS greets as "localhost"; LocalName applies after the upgrade
		c, err = smtp.NewClientStartTLS(conn, t.tlsConfig)
		if err != nil {
			stop()
			conn.Close()
			return nil, fmt.Errorf("smtp: starttls: %w", err)
		}
	} else {
		c = smtp.NewClient(conn)
	}
	c.CommandTimeout = t.cfg.Timeout
	c.SubmissionTimeout = t.cfg.Timeout

	fail := func(step string, err error) (*smtp.Client, error) {
		stop()
		c.Close()
		return nil, fmt.Errorf("smtp: %s: %w", step, err)
	}

	if t.cfg.LocalName != "" {
		if err := c.Hello(t.cfg.LocalName); err != nil {
			return fail("hello", err)
		}
	}

	if t.cfg.Username != "" {
		auth := sasl.NewPlainClient("", t.cfg.Username, t.cfg.Password)
		if err := c.Auth(auth); err != nil {
			return fail("auth", err)
		}
	}

	return c, nil
}

// buildMIME renders a multipart/alternative message with text and HTML parts
func buildMIME(p *domain.EmailPayload, messageID string, date time.Time) ([]byte, error) {
	b := enmime.Builder().
		From(p.From.Name, p.From.Email).
		To(p.To.Name, p.To.Email).
		Subject(p.Subject).
		Date(date).
		Header("Message-ID", messageID).
		Text([]byte(p.Text)).
		HTML([]byte(p.HTML))
	if p.ReplyTo != nil {
		b = b.ReplyTo(p.ReplyTo.Name, p.ReplyTo.Email)
	}

	part, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("smtp: build message: %w", err)
	}

	var buf bytes.Buffer
	if err := part.Encode(&buf); err != nil {
		return nil, fmt.Errorf("smtp: encode message: %w", err)
	}
	return buf.Bytes(), nil
}

// newMessageID returns "<uuid@sender-domain>"
func newMessageID(from string) string {
	host := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		host = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}
