package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewForEnvironment(t *testing.T) {
	dev := NewForEnvironment("development")
	require.NotNil(t, dev)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod := NewForEnvironment("production")
	require.NotNil(t, prod)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("anything"))
}

func TestContextRoundTrip(t *testing.T) {
	base := zap.NewNop()
	ctx := context.Background()

	ctx, _ = WithRequestID(ctx, base, "req-123")
	ctx, _ = WithCompanyID(ctx, base, "co-456")
	ctx, _ = WithUserID(ctx, base, "user-789")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, "co-456", GetCompanyID(ctx))
	assert.Equal(t, "user-789", GetUserID(ctx))

	// logger stored by the With* helpers is retrievable
	assert.NotNil(t, FromContext(ctx))
	assert.NotNil(t, L(ctx))
}

func TestFromContext_MissingLoggerIsNoop(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info("should not panic") })
}
