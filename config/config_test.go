package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Source)
	assert.Equal(t, BackendHost, cfg.Log.Backend)
	assert.False(t, cfg.Profiler.Disabled)
	assert.False(t, cfg.Profiler.RegistersThread())
}

func TestParse(t *testing.T) {
	data := []byte(`
log:
  level: debug
  backend: stderr
profiler:
  category: Physics
  thread_group: Plugin
  thread_name: Worker
`)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendStderr, cfg.Log.Backend)
	assert.True(t, cfg.Log.Source, "unset keys keep their defaults")
	assert.Equal(t, "Physics", cfg.Profiler.Category)
	assert.True(t, cfg.Profiler.RegistersThread())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		validator bool
	}{
		{name: "unknown key", data: "log:\n  colour: red\n"},
		{name: "malformed", data: "log: [\n"},
		{name: "bad level", data: "log:\n  level: trace\n", validator: true},
		{name: "bad backend", data: "log:\n  backend: file\n", validator: true},
		{name: "non-ascii thread name", data: "profiler:\n  thread_group: g\n  thread_name: \"wörker\"\n", validator: true},
		{name: "thread name without group", data: "profiler:\n  thread_name: w\n", validator: true},
		{name: "thread group without name", data: "profiler:\n  thread_group: g\n", validator: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.Equal(t, tt.validator, errors.As(err, &verrs))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLog_Levels(t *testing.T) {
	tests := []struct {
		level string
		slog  slog.Level
		zap   zapcore.Level
	}{
		{"debug", slog.LevelDebug, zapcore.DebugLevel},
		{"info", slog.LevelInfo, zapcore.InfoLevel},
		{"warn", slog.LevelWarn, zapcore.WarnLevel},
		{"error", slog.LevelError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := Log{Level: tt.level}
			assert.Equal(t, tt.slog, l.SlogLevel())
			assert.Equal(t, tt.zap, l.ZapLevel())
		})
	}
}
