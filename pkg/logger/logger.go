package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	// Create logger
	logger := slog.New(handler)

	return &Logger{
		Logger: logger,
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// Layout logging methods

// LogLayoutLoaded logs where a layout came from (cache, database, empty)
func (l *Logger) LogLayoutLoaded(ctx context.Context, eventID, source string, zones, seats int) {
	l.Logger.InfoContext(ctx,
		"Layout Loaded",
		slog.String("event_id", eventID),
		slog.String("source", source),
		slog.Int("zones", zones),
		slog.Int("seats", seats),
	)
}

// LogLayoutSaved logs a full-replace save
func (l *Logger) LogLayoutSaved(ctx context.Context, eventID string, version uint64, stale bool) {
	l.Logger.InfoContext(ctx,
		"Layout Saved",
		slog.String("event_id", eventID),
		slog.Uint64("version", version),
		slog.Bool("stale", stale),
	)
}

// LogLayoutEdit logs a committed editor operation
func (l *Logger) LogLayoutEdit(ctx context.Context, eventID, operation, target, outcome string) {
	l.Logger.DebugContext(ctx,
		"Layout Edit",
		slog.String("event_id", eventID),
		slog.String("operation", operation),
		slog.String("target", target),
		slog.String("outcome", outcome),
	)
}

// LogLegacySeatsMigrated logs the one-time backfill of legacy seat addresses
func (l *Logger) LogLegacySeatsMigrated(ctx context.Context, eventID string, count int) {
	l.Logger.InfoContext(ctx,
		"Legacy Seats Migrated",
		slog.String("event_id", eventID),
		slog.Int("count", count),
	)
}

// LogTemplateSaved logs when a layout template is stored
func (l *Logger) LogTemplateSaved(ctx context.Context, templateID, name string) {
	l.Logger.InfoContext(ctx,
		"Layout Template Saved",
		slog.String("template_id", templateID),
		slog.String("name", name),
	)
}

// Security logging methods

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(ctx context.Context, reason, ip string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
		slog.String("ip", ip),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
