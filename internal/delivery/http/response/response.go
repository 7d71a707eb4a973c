package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Sent reports a delivered message with its transport id
func Sent(c *gin.Context, code int, message, messageID string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		MessageID: messageID,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err any) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// ErrorWithDetails sends an error response listing field errors
func ErrorWithDetails(c *gin.Context, code int, message string, errors any, detail any) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    errors,
		Error:     detail,
		RequestID: requestID(c),
	})
}
