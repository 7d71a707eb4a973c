package middleware

import (
	"net/http"
	"strings"

	"portfolio-contact-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend origins.
//
// Requests without an Origin header (curl, server to server) pass through.
// Disallowed origins receive no CORS headers so the browser blocks them, and
// their preflights are answered with 403.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := origin == "" || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After")
			c.Header("Access-Control-Max-Age", "86400")
		}
		if !isAllowed {
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:     security.EventCORSOriginRejected,
				IP:        c.ClientIP(),
				UserAgent: c.GetHeader("User-Agent"),
				Details:   map[string]any{"origin": origin},
			})
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
