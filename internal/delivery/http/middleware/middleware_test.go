package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(RateLimitMiddleware(RateLimitConfig{Limit: 2, Window: time.Minute, KeyPrefix: "test:"}))
	r.GET("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(r, http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(r, http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Too many requests from this IP, please try again later.", body.Message)
}

func TestMemoryStore_WindowReset(t *testing.T) {
	s := &memoryStore{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	count, resetAt := s.hit("k", time.Minute, now)
	assert.Equal(t, 1, count)
	assert.Equal(t, now.Add(time.Minute), resetAt)

	count, _ = s.hit("k", time.Minute, now.Add(30*time.Second))
	assert.Equal(t, 2, count)

	count, resetAt = s.hit("k", time.Minute, now.Add(time.Minute))
	assert.Equal(t, 1, count)
	assert.Equal(t, now.Add(2*time.Minute), resetAt)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://kaiz.dev", "http://localhost:5173/"}))
	r.GET("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Should echo an allowed origin", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/contact", map[string]string{"Origin": "http://localhost:5173"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Should answer an allowed preflight", func(t *testing.T) {
		w := perform(r, http.MethodOptions, "/api/contact", map[string]string{"Origin": "https://kaiz.dev"})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Should refuse an unknown preflight", func(t *testing.T) {
		w := perform(r, http.MethodOptions, "/api/contact", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should pass requests without origin", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/contact", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { response.Success(c, http.StatusOK, "ok", nil) })

	w := perform(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, decode(t, w).RequestID)

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "edge-123"})
	assert.Equal(t, "edge-123", w.Header().Get(RequestIDHeader))

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "bad id\r\nX: y"})
	assert.NotEqual(t, "bad id\r\nX: y", w.Header().Get(RequestIDHeader))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(apperror.Validation("Please provide a valid email address", []string{"email"}, nil))
	})
	r.GET("/detail", func(c *gin.Context) {
		_ = c.Error(apperror.Internal("Internal Server Error", errors.New("boom")).WithDetail("boom"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("database password is hunter2"))
	})
	r.NoRoute(NotFound())

	w := perform(r, http.MethodGet, "/validation", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Please provide a valid email address", body.Message)
	assert.Equal(t, []any{"email"}, body.Errors)
	assert.Nil(t, body.Error)

	w = perform(r, http.MethodGet, "/detail", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", decode(t, w).Error)

	w = perform(r, http.MethodGet, "/plain", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")

	w = perform(r, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found - /nowhere", decode(t, w).Message)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware(true))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/swagger/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/health", nil)
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "img-src 'self' data: https:")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))

	w = perform(r, http.MethodGet, "/api/swagger/index.html", nil)
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
}
