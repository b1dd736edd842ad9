package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(zapcore.InfoLevel, zapcore.AddSync(&buf))
	// 之后的调用不生效
	Init(zapcore.DebugLevel, nil)

	log := GetLogger().Named("shell")
	log.Debug("hidden")
	log.Info("session started", zap.Int("keys", 0))
	require.NoError(t, Sync())

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "shell")
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, `{"keys": 0}`)
	assert.NotContains(t, out, "hidden")
}

func TestParseLevel(t *testing.T) {
	for text, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := ParseLevel(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
