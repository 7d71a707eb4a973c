package validation_test

import (
	"strings"
	"testing"
	"time"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Subject:     "Project Inquiry",
		Message:     "Hello, interested in working together.",
		SourceIP:    "203.0.113.7",
		UserAgent:   "Mozilla/5.0",
		SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newValidator() *validation.ContactValidator {
	return validation.NewContactValidator(validator.New())
}

func TestContactValidator_Valid(t *testing.T) {
	cv := newValidator()

	t.Run("Should normalize email and keep metadata", func(t *testing.T) {
		in := validInput()
		in.Email = "JANE@EXAMPLE.COM"

		res := cv.Validate(in)

		require.True(t, res.Valid())
		assert.Equal(t, "jane@example.com", res.Submission.Email)
		assert.Equal(t, "Jane Doe", res.Submission.Name)
		assert.Equal(t, "203.0.113.7", res.Submission.SourceIP)
		assert.Equal(t, "Mozilla/5.0", res.Submission.UserAgent)
		assert.Equal(t, in.SubmittedAt, res.Submission.SubmittedAt)
	})

	t.Run("Should accept a two character name", func(t *testing.T) {
		in := validInput()
		in.Name = "Jo"
		in.Email = "jo@x.com"
		in.Subject = "Hi!!"
		in.Message = "Hello there"

		assert.True(t, cv.Validate(in).Valid())
	})

	t.Run("Should trim and escape subject and message", func(t *testing.T) {
		in := validInput()
		in.Name = "  Mary-Jane O'Neil Jr.  "
		in.Subject = "  Tom & Jerry's <plan>  "
		in.Message = "a/b \"quoted\" `tick` back\\slash"

		res := cv.Validate(in)

		require.True(t, res.Valid())
		assert.Equal(t, "Mary-Jane O'Neil Jr.", res.Submission.Name)
		assert.Equal(t, "Tom &amp; Jerry&#x27;s &lt;plan&gt;", res.Submission.Subject)
		assert.Equal(t, "a&#x2F;b &quot;quoted&quot; &#96;tick&#96; back&#x5C;slash", res.Submission.Message)
	})

	t.Run("Should accept a message of exactly 2000 characters", func(t *testing.T) {
		in := validInput()
		in.Message = strings.Repeat("a", 2000)

		assert.True(t, cv.Validate(in).Valid())
	})
}

func TestContactValidator_Invalid(t *testing.T) {
	cv := newValidator()

	t.Run("Should reject a one character name", func(t *testing.T) {
		in := validInput()
		in.Name = "J"

		res := cv.Validate(in)

		require.False(t, res.Valid())
		primary, ok := res.Primary()
		require.True(t, ok)
		assert.Equal(t, "name", primary.Field)
		assert.Equal(t, "Name must be between 2 and 100 characters", primary.Message)
		assert.Equal(t, "J", primary.Value)
	})

	t.Run("Should reject a name with digits", func(t *testing.T) {
		in := validInput()
		in.Name = "J0hn"

		res := cv.Validate(in)

		require.Len(t, res.Violations, 1)
		assert.Equal(t, "Name can only contain letters, spaces, hyphens, apostrophes, and periods", res.Violations[0].Message)
	})

	t.Run("Should report only the first broken rule per field", func(t *testing.T) {
		in := validInput()
		in.Name = "1" // fails both length and pattern

		res := cv.Validate(in)

		require.Len(t, res.Violations, 1)
		assert.Equal(t, "Name must be between 2 and 100 characters", res.Violations[0].Message)
	})

	t.Run("Should collect violations in declared order", func(t *testing.T) {
		in := domain.SubmissionInput{
			Name:    "J",
			Email:   "not-an-email",
			Subject: "Hi",
			Message: "Hey",
		}

		res := cv.Validate(in)

		require.Len(t, res.Violations, 4)
		fields := []string{}
		for _, v := range res.Violations {
			fields = append(fields, v.Field)
		}
		assert.Equal(t, []string{"name", "email", "subject", "message"}, fields)
		assert.Equal(t, "Please provide a valid email address", res.Violations[1].Message)
		assert.Equal(t, "not-an-email", res.Violations[1].Value)

		// same input, same order
		assert.Equal(t, res.Violations, cv.Validate(in).Violations)
	})

	t.Run("Should reject empty fields", func(t *testing.T) {
		res := cv.Validate(domain.SubmissionInput{})

		assert.Len(t, res.Violations, 4)
	})

	t.Run("Should reject a message of 2001 characters", func(t *testing.T) {
		in := validInput()
		in.Message = strings.Repeat("a", 2001)

		res := cv.Validate(in)

		require.Len(t, res.Violations, 1)
		assert.Equal(t, "message", res.Violations[0].Field)
	})

	t.Run("Should check length before escaping", func(t *testing.T) {
		in := validInput()
		in.Subject = strings.Repeat("&", 200) // escapes to 1000 characters

		assert.True(t, cv.Validate(in).Valid())
	})

	t.Run("Should reject a whitespace padded short subject", func(t *testing.T) {
		in := validInput()
		in.Subject = "  ab   "

		res := cv.Validate(in)

		require.Len(t, res.Violations, 1)
		assert.Equal(t, "subject", res.Violations[0].Field)
		assert.Equal(t, "ab", res.Violations[0].Value)
	})

	t.Run("Should reject an email longer than 255 characters", func(t *testing.T) {
		label := strings.Repeat("b", 60)
		in := validInput()
		in.Email = "a@" + strings.Join([]string{label, label, label, label, label}, ".") + ".com"

		res := cv.Validate(in)

		require.Len(t, res.Violations, 1)
		assert.Equal(t, "email", res.Violations[0].Field)
		assert.Equal(t, "Email must not exceed 255 characters", res.Violations[0].Message)
	})
}

func TestUseFieldNames(t *testing.T) {
	type sample struct {
		Tagged string `field:"tagged" json:"ignored" validate:"required"`
		JSON   string `json:"from_json,omitempty" validate:"required"`
		Plain  string `validate:"required"`
	}

	v := validator.New()
	validation.UseFieldNames(v)

	err := v.Struct(sample{})
	require.Error(t, err)

	var fields []string
	for _, fe := range err.(validator.ValidationErrors) {
		fields = append(fields, fe.Field())
	}
	assert.Equal(t, []string{"tagged", "from_json", "Plain"}, fields)
}
