package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets the helmet style header set used by the
// portfolio frontend's API.
func SecurityHeadersMiddleware(production bool) gin.HandlerFunc {
	const csp = "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self'; " +
		"img-src 'self' data: https:; " +
		"base-uri 'self'; " +
		"font-src 'self' https: data:; " +
		"form-action 'self'; " +
		"frame-ancestors 'self'; " +
		"object-src 'none'; " +
		"script-src-attr 'none'; " +
		"upgrade-insecure-requests"

	return func(c *gin.Context) {
		// swagger UI bootstraps with inline scripts
		if !strings.HasPrefix(c.Request.URL.Path, "/api/swagger/") {
			c.Header("Content-Security-Policy", csp)
		}
		c.Header("Cross-Origin-Opener-Policy", "same-origin")
		c.Header("Cross-Origin-Resource-Policy", "same-origin")
		c.Header("Origin-Agent-Cluster", "?1")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-DNS-Prefetch-Control", "off")
		c.Header("X-Download-Options", "noopen")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")
		c.Header("X-XSS-Protection", "0")

		// HSTS only makes sense behind TLS
		if production {
			c.Header("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
		}

		c.Next()
	}
}
