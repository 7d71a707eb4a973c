package email

import (
	"bytes"
	"html"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"portfolio-contact-backend/internal/domain"
)

const (
	ownerSubjectPrefix  = "📧 New Contact Form Submission: "
	confirmationSubject = "✅ Message Received - Thank You for Contacting Me"
)

// Templates holds the process-wide constants interpolated into every email
type Templates struct {
	OwnerName    string // signs the confirmation email
	OwnerTitle   string
	SiteName     string // "portfolio website"
	FromName     string // display name of the owner notification
	FromAddress  string // envelope and header sender of both emails
	ContactEmail string // owner inbox
}

// Composer renders the owner notification and the sender confirmation.
// It holds only parsed templates and is safe for concurrent use.
type Composer struct {
	tmpl Templates

	ownerHTML        *htmltemplate.Template
	ownerText        *texttemplate.Template
	confirmationHTML *htmltemplate.Template
	confirmationText *texttemplate.Template
}

// NewComposer parses the email templates. The templates are constants, so a
// parse failure is a programming error and panics.
func NewComposer(t Templates) *Composer {
	return &Composer{
		tmpl:             t,
		ownerHTML:        htmltemplate.Must(htmltemplate.New("owner.html").Parse(ownerEmailHTML)),
		ownerText:        texttemplate.Must(texttemplate.New("owner.txt").Parse(ownerEmailText)),
		confirmationHTML: htmltemplate.Must(htmltemplate.New("confirmation.html").Parse(confirmationEmailHTML)),
		confirmationText: texttemplate.Must(texttemplate.New("confirmation.txt").Parse(confirmationEmailText)),
	}
}

// view is the data handed to all four templates.
// Subject and Message arrive HTML-escaped from validation; the *HTML fields
// carry them as-is and the plain fields carry them unescaped.
type view struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SubjectHTML htmltemplate.HTML
	MessageHTML htmltemplate.HTML
	Time        string
	SourceIP    string
	UserAgent   string
	OwnerName   string
	OwnerTitle  string
	SiteName    string
	Year        int
}

// Compose renders both payloads. It reads no clock: the submission timestamp
// provides both the displayed time and the copyright year.
func (c *Composer) Compose(sub domain.ValidatedSubmission) (owner, confirmation domain.EmailPayload) {
	v := view{
		Name:        sub.Name,
		Email:       sub.Email,
		Subject:     html.UnescapeString(sub.Subject),
		Message:     html.UnescapeString(sub.Message),
		SubjectHTML: htmltemplate.HTML(sub.Subject),
		MessageHTML: htmltemplate.HTML(lineBreaks(sub.Message)),
		Time:        sub.SubmittedAt.UTC().Format(time.RFC3339),
		SourceIP:    sub.SourceIP,
		UserAgent:   sub.UserAgent,
		OwnerName:   c.tmpl.OwnerName,
		OwnerTitle:  c.tmpl.OwnerTitle,
		SiteName:    c.tmpl.SiteName,
		Year:        sub.SubmittedAt.Year(),
	}

	owner = domain.EmailPayload{
		To:      domain.Address{Email: c.tmpl.ContactEmail},
		From:    domain.Address{Name: c.tmpl.FromName, Email: c.tmpl.FromAddress},
		ReplyTo: &domain.Address{Name: sub.Name, Email: sub.Email},
		Subject: ownerSubjectPrefix + headerSafe(v.Subject),
		HTML:    render(c.ownerHTML, v),
		Text:    render(c.ownerText, v),
	}

	confirmation = domain.EmailPayload{
		To:      domain.Address{Name: sub.Name, Email: sub.Email},
		From:    domain.Address{Name: c.tmpl.OwnerName, Email: c.tmpl.FromAddress},
		Subject: confirmationSubject,
		HTML:    render(c.confirmationHTML, v),
		Text:    render(c.confirmationText, v),
	}

	return owner, confirmation
}

type executor interface {
	Execute(w io.Writer, data any) error
}

// render executes a template over a fixed view; the templates only reference
// fields of view, so execution cannot fail.
func render(t executor, v view) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		panic("email: render " + err.Error())
	}
	return buf.String()
}

func lineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}

// headerSafe folds line breaks so a subject cannot inject header lines
func headerSafe(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}
