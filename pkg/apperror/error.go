package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Errors carries field level details rendered as "errors"
	Errors any `json:"errors,omitempty"`
	// Detail is the raw cause, shown to clients only outside production
	Detail string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

// Validation is a 400 listing every offending field
func Validation(message string, errors any, err error) *AppError {
	e := New(http.StatusBadRequest, message, err)
	e.Errors = errors
	return e
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// PayloadTooLarge is a 413 for bodies over the configured limit
func PayloadTooLarge(message string, err error) *AppError {
	return New(http.StatusRequestEntityTooLarge, message, err)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

func ServiceUnavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

// WithDetail exposes the cause to the client
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}
