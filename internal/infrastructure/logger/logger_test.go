package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
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
		{"DEBUG", zapcore.DebugLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNew(t *testing.T) {
	for _, cfg := range []*Config{DefaultConfig(), ProductionConfig()} {
		log, err := New(cfg)
		require.NoError(t, err)
		require.NotNil(t, log)
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := t.TempDir() + "/app.log"
	log, err := New(&Config{Level: "info", Format: "json", Output: path})

	require.NoError(t, err)
	log.Info("started")
	require.NoError(t, log.Sync())

	assert.FileExists(t, path)
}
