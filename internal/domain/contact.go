package domain

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"
)

// ContactRequest is the JSON body accepted by the contact endpoint
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// SubmissionInput is one untrusted contact form submission plus request metadata.
// The sanitized form of a submission uses the same type.
type SubmissionInput struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SourceIP    string
	UserAgent   string
	SubmittedAt time.Time
}

// ValidatedSubmission holds normalized values: trimmed name, canonical email,
// HTML-escaped subject and message.
type ValidatedSubmission struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SourceIP    string
	UserAgent   string
	SubmittedAt time.Time
}

// FieldViolation is a single failed validation rule
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// ValidationResult is either valid (Violations empty) or invalid.
// Violations keep the declared rule order; the first one is the primary error.
type ValidationResult struct {
	Submission ValidatedSubmission
	Violations []FieldViolation
}

// Valid reports whether no rule failed
func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// Primary returns the first violation, if any
func (r ValidationResult) Primary() (FieldViolation, bool) {
	if len(r.Violations) == 0 {
		return FieldViolation{}, false
	}
	return r.Violations[0], true
}

// Address is a display name plus mailbox
type Address struct {
	Name  string
	Email string
}

// String formats the address for a header, e.g. "Jane Doe" <jane@example.com>
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// EmailPayload is a fully rendered email ready for a MailTransport
type EmailPayload struct {
	To      Address
	From    Address
	ReplyTo *Address
	Subject string
	HTML    string
	Text    string
}

// MailTransport delivers a payload and returns the transport's message identifier
type MailTransport interface {
	Send(ctx context.Context, payload *EmailPayload) (string, error)
}

// ErrMailNotConfigured is matched by errors from a transport that was never configured
var ErrMailNotConfigured = errors.New("email service is not configured")

// DispatchStage names the send that failed
type DispatchStage string

const (
	StageOwner        DispatchStage = "owner"
	StageConfirmation DispatchStage = "confirmation"
)

// ValidationError is the client error carried by an invalid outcome
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return e.Violations[0].Message
}

// TransportError wraps a failed send
type TransportError struct {
	Stage  DispatchStage
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s email: %s", e.Stage, e.Reason)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DispatchOutcome is the single result of processing a submission.
// ConfirmationMessageID is empty when the confirmation send failed; that
// failure does not affect Success.
type DispatchOutcome struct {
	Success               bool
	OwnerMessageID        string
	ConfirmationMessageID string
	FailureReason         string
	Violations            []FieldViolation
	Err                   error
	ConfirmationErr       error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Process runs a submission through sanitize, validate, compose and dispatch
	Process(ctx context.Context, input SubmissionInput) DispatchOutcome
}
