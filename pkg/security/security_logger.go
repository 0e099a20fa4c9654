package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventLoginSuccess       EventType = "login_success"
	EventLoginFailed        EventType = "login_failed"
	EventLogout             EventType = "logout"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventSessionRejected    EventType = "session_rejected"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "email", "ip", "user_id"
	SubjectValue string // masked or hashed for PII
	IP           string
	UserAgent    string
	RequestID    string
	Details      map[string]interface{}
}

// SecurityLogger writes account and abuse events to a dedicated zap logger
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *SecurityLogger
	defaultMu     sync.Mutex
)

// NewSecurityLogger wraps an existing zap logger.
func NewSecurityLogger(zapLogger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   zapLogger,
		serviceName: serviceName,
		environment: environment,
	}
}

// InitSecurityLogger builds the production zap logger and installs it as the default.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)
	SetDefaultLogger(sl)
	return sl
}

// SetDefaultLogger replaces the process-wide security logger.
func SetDefaultLogger(sl *SecurityLogger) {
	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
}

// DefaultLogger returns the process-wide security logger, falling back to a no-op logger.
func DefaultLogger() *SecurityLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewSecurityLogger(zap.NewNop(), "internship-backend", "development")
	}
	return defaultLogger
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventLoginFailed, EventRateLimitTriggered, EventSessionRejected:
		level = zapcore.WarnLevel
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
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
		fields = append(fields, zap.Any("details", event.Details))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRegistered logs a new account
func (sl *SecurityLogger) LogRegistered(ctx context.Context, email, ip, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUserRegistered,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		RequestID:    requestID,
	})
}

// LogLoginSuccess logs a successful login
func (sl *SecurityLogger) LogLoginSuccess(ctx context.Context, email, ip, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginSuccess,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		RequestID:    requestID,
	})
}

// LogLoginFailed logs a failed login attempt
func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, email, ip, userAgent, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": reason},
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
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogSessionRejected logs a session cookie that failed verification
func (sl *SecurityLogger) LogSessionRejected(ctx context.Context, ip, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:       EventSessionRejected,
		SubjectType: "ip",
		IP:          ip,
		RequestID:   requestID,
		Details:     map[string]interface{}{"reason": reason},
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
	atIndex := -1
	for i, c := range email {
		if c == '@' {
			atIndex = i
			break
		}
	}
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a short SHA256 fingerprint of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
