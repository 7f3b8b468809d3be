// Package logger provides a global, Sugared Zap logger. It supports
// configuring log level and encoding via functional options and writes to
// stderr so that stdout stays reserved for the command's report.
//
// Until Init is called every helper logs to a no-op logger, which keeps
// packages that log usable from tests without any setup.
package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatConsole renders human-readable, colorless log lines.
	FormatConsole = "console"

	// FormatJSON renders one JSON object per log line.
	FormatJSON = "json"
)

var (
	// logger is the global SugaredLogger instance. It is replaced once by Init.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level  string // the minimum log level (debug, info, warn, error, panic, fatal)
	format string // the line encoding (console, json)
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithFormat sets the log line encoding, either FormatConsole or FormatJSON.
func WithFormat(f string) Option {
	return func(c *config) {
		c.format = f
	}
}

// newEncoder builds the zap encoder matching the configured format.
func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case FormatJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	case FormatConsole:
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Init configures the global logger. It accepts zero or more Option values to
// customize behavior (e.g. WithLevel). By default, it logs console lines to
// stderr at the "info" level. Calling Init multiple times has no effect after
// the first successful initialization.
//
// Returns an error if the log level or format is invalid.
func Init(opts ...Option) error {
	cfg := config{level: "info", format: FormatConsole}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	encoder, err := newEncoder(cfg.format)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
		logger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// withTrace appends the trace and span ids of the span carried by ctx, if any.
func withTrace(ctx context.Context, keysAndValues []any) []any {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return keysAndValues
	}

	return append(keysAndValues,
		"trace_id", spanCtx.TraceID().String(),
		"span_id", spanCtx.SpanID().String(),
	)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withTrace(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withTrace(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withTrace(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withTrace(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withTrace(ctx, keysAndValues)...)
}
