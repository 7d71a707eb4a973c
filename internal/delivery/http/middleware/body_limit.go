package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// DefaultBodyLimit matches the 10mb JSON and urlencoded parser limit
const DefaultBodyLimit int64 = 10 << 20

const msgBodyTooLarge = "Request body too large"

// BodyLimit caps request bodies at limit bytes. A declared Content-Length over
// the limit is refused up front; otherwise the body reader fails once the
// limit is crossed and handlers report it with BodyTooLarge.
func BodyLimit(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			_ = c.Error(apperror.PayloadTooLarge(msgBodyTooLarge,
				fmt.Errorf("content length %d exceeds %d bytes", c.Request.ContentLength, limit)))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// BodyTooLarge converts a read error caused by BodyLimit into a 413, or
// returns nil for any other error.
func BodyTooLarge(err error) *apperror.AppError {
	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		return nil
	}
	return apperror.PayloadTooLarge(msgBodyTooLarge, err)
}
