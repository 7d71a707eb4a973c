package middleware

import (
	"errors"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/pkg/apperror"
	"portfolio-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients
			logger.Log.Error("Internal Server Error", "path", c.FullPath(), "error", err)
			appErr = apperror.Internal("An unexpected error occurred. Please try again later.", err)
		} else if appErr.Err != nil {
			logger.Log.Debug("Request failed", "status", appErr.Code, "path", c.FullPath(), "error", appErr.Err)
		}

		var detail any
		if appErr.Detail != "" {
			detail = appErr.Detail
		}
		response.ErrorWithDetails(c, appErr.Code, appErr.Message, appErr.Errors, detail)
	}
}

// NotFound answers unknown routes with the standard envelope
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Not Found - " + c.Request.URL.Path))
	}
}
