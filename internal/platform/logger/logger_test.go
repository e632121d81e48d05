package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLoggerHonoursLevel(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{Encoding: "json", Level: "warn"})
	zl, ok := l.(interface {
		Core() zapcore.Core
	})
	require.True(t, ok)
	require.False(t, zl.Core().Enabled(zapcore.InfoLevel))
	require.True(t, zl.Core().Enabled(zapcore.WarnLevel))
}

func TestNewZapLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{IsDevelopment: true, Encoding: "console", Level: "loud"})
	zl := l.(interface {
		Core() zapcore.Core
	})
	require.True(t, zl.Core().Enabled(zapcore.InfoLevel))
	require.False(t, zl.Core().Enabled(zapcore.DebugLevel))
}
