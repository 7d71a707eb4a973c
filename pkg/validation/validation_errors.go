package validation

import (
	"errors"
	"fmt"

	"portfolio-contact-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldMessages maps field name and failed tag to the message shown to the sender.
// Both bounds of a length rule share one message.
var FieldMessages = map[string]map[string]string{
	"name": {
		"min":         "Name must be between 2 and 100 characters",
		"max":         "Name must be between 2 and 100 characters",
		"person_name": "Name can only contain letters, spaces, hyphens, apostrophes, and periods",
	},
	"email": {
		"email": "Please provide a valid email address",
		"max":   "Email must not exceed 255 characters",
	},
	"subject": {
		"min": "Subject must be between 3 and 200 characters",
		"max": "Subject must be between 3 and 200 characters",
	},
	"message": {
		"min": "Message must be between 5 and 2000 characters",
		"max": "Message must be between 5 and 2000 characters",
	},
}

// FormatFieldViolations converts validator.ValidationErrors to ordered field violations.
// Only the first failing rule of each field is kept.
func FormatFieldViolations(err error) []domain.FieldViolation {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []domain.FieldViolation{{Message: err.Error()}}
	}

	seen := make(map[string]bool, len(validationErrors))
	violations := make([]domain.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		if seen[e.Field()] {
			continue
		}
		seen[e.Field()] = true
		violations = append(violations, domain.FieldViolation{
			Field:   e.Field(),
			Message: formatSingleError(e),
			Value:   fmt.Sprint(e.Value()),
		})
	}

	return violations
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	if msgs, ok := FieldMessages[e.Field()]; ok {
		if msg, ok := msgs[e.Tag()]; ok {
			return msg
		}
	}

	// Fallback for unknown fields or tags
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
