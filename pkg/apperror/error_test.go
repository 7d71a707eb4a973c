package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	t.Run("Should unwrap to the cause", func(t *testing.T) {
		err := ServiceUnavailable("Contact service temporarily unavailable", cause)

		assert.Equal(t, http.StatusServiceUnavailable, err.Code)
		assert.Equal(t, "Contact service temporarily unavailable", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should carry validation details", func(t *testing.T) {
		details := []string{"name"}
		err := Validation("Name must be between 2 and 100 characters", details, nil)

		assert.Equal(t, http.StatusBadRequest, err.Code)
		assert.Equal(t, details, err.Errors)
		assert.Empty(t, err.Detail)
	})

	t.Run("Should attach detail", func(t *testing.T) {
		err := Internal("Sorry, there was an error sending your message.", cause).WithDetail(cause.Error())

		assert.Equal(t, http.StatusInternalServerError, err.Code)
		assert.Equal(t, "Sorry, there was an error sending your message.", err.Message)
		assert.Equal(t, "dial tcp: connection refused", err.Detail)
	})

	t.Run("Should map client faults to their status", func(t *testing.T) {
		tests := map[int]*AppError{
			http.StatusBadRequest:            BadRequest("Invalid request body", cause),
			http.StatusNotFound:              NotFound("Not Found - /nowhere"),
			http.StatusRequestEntityTooLarge: PayloadTooLarge("Request body too large", cause),
			http.StatusTooManyRequests:       TooManyRequests("Too many requests from this IP, please try again later."),
		}
		for code, err := range tests {
			assert.Equal(t, code, err.Code, err.Message)
		}
		assert.ErrorIs(t, tests[http.StatusBadRequest], cause)
	})
}
