package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	logger = zap.NewNop().Sugar()
	initOnce = sync.Once{}
}

// observe swaps the global logger for an in-memory one and returns its recorded entries.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger
	logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger = previous })

	return logs
}

func TestInit(t *testing.T) {
	t.Run("successful initialization with defaults", func(t *testing.T) {
		resetLogger()
		err := Init()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("successful initialization with json format", func(t *testing.T) {
		resetLogger()
		err := Init(WithLevel("debug"), WithFormat(FormatJSON))
		require.NoError(t, err)
	})

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init(WithLevel("invalid"))
		assert.Error(t, err)
	})

	t.Run("error with invalid format", func(t *testing.T) {
		resetLogger()
		err := Init(WithFormat("xml"))
		assert.Error(t, err)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		require.NoError(t, Init(WithLevel("debug")))
		first := logger

		require.NoError(t, Init(WithLevel("error")))
		assert.Same(t, first, logger, "Init() should only initialize once")
	})
}

func TestHelpers(t *testing.T) {
	t.Run("uninitialized logger does not panic", func(t *testing.T) {
		resetLogger()
		assert.NotPanics(t, func() {
			Debug(context.Background(), "debug")
			Info(context.Background(), "info")
			Warn(context.Background(), "warn")
			Error(context.Background(), "error")
		})
	})

	t.Run("writes entries with levels and fields", func(t *testing.T) {
		logs := observe(t)
		ctx := t.Context()

		Debug(ctx, "debug message", "k", "v")
		Info(ctx, "info message")
		Warn(ctx, "warn message")
		Error(ctx, "error message")

		entries := logs.All()
		require.Len(t, entries, 4)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "v", entries[0].ContextMap()["k"])
		assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
		assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	})

	t.Run("adds trace ids from a span context", func(t *testing.T) {
		logs := observe(t)

		spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x01, 0x02, 0x03},
			SpanID:     trace.SpanID{0x04, 0x05},
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(t.Context(), spanCtx)

		Info(ctx, "traced")

		entries := logs.All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, spanCtx.TraceID().String(), fields["trace_id"])
		assert.Equal(t, spanCtx.SpanID().String(), fields["span_id"])
	})
}
