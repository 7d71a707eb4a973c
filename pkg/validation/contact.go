package validation

import (
	"strings"

	"portfolio-contact-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// contactForm declares the rules in the order violations are reported.
// NormalizedEmail shares the "email" name so its length rule only reports
// when the syntax rule passed.
type contactForm struct {
	Name            string `field:"name" validate:"min=2,max=100,person_name"`
	Email           string `field:"email" validate:"email"`
	NormalizedEmail string `field:"email" validate:"omitempty,max=255"`
	Subject         string `field:"subject" validate:"min=3,max=200"`
	Message         string `field:"message" validate:"min=5,max=2000"`
}

// ContactValidator checks contact form submissions. Safe for concurrent use.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator registers the contact rules on v and returns a validator using it
func NewContactValidator(v *validator.Validate) *ContactValidator {
	RegisterValidators(v)
	UseFieldNames(v)
	return &ContactValidator{validate: v}
}

// Validate never fails: malformed input yields a result with violations.
func (cv *ContactValidator) Validate(in domain.SubmissionInput) domain.ValidationResult {
	form := contactForm{
		Name:            strings.TrimSpace(in.Name),
		Email:           in.Email,
		NormalizedEmail: NormalizeEmail(in.Email),
		Subject:         strings.TrimSpace(in.Subject),
		Message:         strings.TrimSpace(in.Message),
	}

	if err := cv.validate.Struct(form); err != nil {
		return domain.ValidationResult{Violations: FormatFieldViolations(err)}
	}

	return domain.ValidationResult{
		Submission: domain.ValidatedSubmission{
			Name:        form.Name,
			Email:       form.NormalizedEmail,
			Subject:     Escape(form.Subject),
			Message:     Escape(form.Message),
			SourceIP:    in.SourceIP,
			UserAgent:   in.UserAgent,
			SubmittedAt: in.SubmittedAt,
		},
	}
}
