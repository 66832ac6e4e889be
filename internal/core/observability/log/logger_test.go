package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelSilent,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := Wrap(zap.New(core), LevelDebug)

	logger.With(String("component", "test")).Info("ready",
		Int("samples", 12),
		Float64("max_distance", 41.5),
		Duration("took", time.Second),
		Uint64("checksum", 7),
		Bool("cached", false),
		Err(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "ready", entry.Message)
	ctx := entry.ContextMap()
	require.Equal(t, "test", ctx["component"])
	require.EqualValues(t, 12, ctx["samples"])
	require.Equal(t, 41.5, ctx["max_distance"])
	require.Equal(t, "boom", ctx["error"])
}

func TestLoggerLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := Wrap(zap.New(core), LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, LevelWarn, logger.GetLevel())

	logger.SetLevel(LevelDebug)
	logger.Debug("now shown")
	require.Equal(t, 2, logs.Len())
}

func TestNop(t *testing.T) {
	logger := NewNop()
	logger.Error("discarded")
	require.Equal(t, LevelSilent, logger.GetLevel())
	require.NotNil(t, Provide())
}
