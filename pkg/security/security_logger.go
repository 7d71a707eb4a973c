package security

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered  EventType = "rate_limit_triggered"
	EventValidationFailed    EventType = "validation_failed"
	EventSuspiciousInput     EventType = "suspicious_input"
	EventMailDeliveryFailed  EventType = "mail_delivery_failed"
	EventMailNotConfigured   EventType = "mail_not_configured"
	EventCORSOriginRejected  EventType = "cors_origin_rejected"
	EventRateLimitStoreError EventType = "rate_limit_store_error"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time      `json:"timestamp"`
	Service      string         `json:"service"`
	Environment  string         `json:"env"`
	Level        string         `json:"level"`
	Event        EventType      `json:"event"`
	SubjectType  string         `json:"subject_type,omitempty"`  // "email", "ip"
	SubjectValue string         `json:"subject_value,omitempty"` // masked for PII
	IP           string         `json:"ip,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	RequestID    string         `json:"request_id,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *SecurityLogger
	defaultMu     sync.Mutex
)

// InitSecurityLogger initializes the security logger with Zap
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)

	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
	return sl
}

// NewSecurityLogger wraps an existing zap logger
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// DefaultLogger returns the process wide security logger, a no-op one until
// InitSecurityLogger runs.
func DefaultLogger() *SecurityLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		return NewSecurityLogger(zap.NewNop(), "portfolio-contact-backend", "development")
	}
	return defaultLogger
}

// Log logs a security event
func (sl *SecurityLogger) Log(_ context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventMailDeliveryFailed, EventMailNotConfigured, EventRateLimitStoreError:
		level = zapcore.ErrorLevel
	case EventSuspiciousInput, EventCORSOriginRejected:
		level = zapcore.InfoLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogValidationFailed records a rejected submission. Only the field names
// are kept, never the rejected values.
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, email, ip, userAgent string, fields []string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventValidationFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		UserAgent:    userAgent,
		Details:      map[string]any{"fields": fields},
	})
}

// LogSuspiciousInput records that the sanitizer had to rewrite a field
func (sl *SecurityLogger) LogSuspiciousInput(ctx context.Context, ip, userAgent string, fields []string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventSuspiciousInput,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		Details:      map[string]any{"fields": fields},
	})
}

// LogMailDeliveryFailed records a failed send for the given stage
func (sl *SecurityLogger) LogMailDeliveryFailed(ctx context.Context, stage, recipient, ip, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventMailDeliveryFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(recipient),
		IP:           ip,
		Details:      map[string]any{"stage": stage, "reason": reason},
	})
}

// LogMailNotConfigured records a submission refused for lack of mail credentials
func (sl *SecurityLogger) LogMailNotConfigured(ctx context.Context, ip, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:   EventMailNotConfigured,
		IP:      ip,
		Details: map[string]any{"reason": reason},
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]any{"endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}
