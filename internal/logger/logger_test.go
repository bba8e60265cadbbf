package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_CONSOLE_FORMAT", "json")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "/tmp/trainer.log")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "DEBUG", cfg.Level)
	assert.Equal(t, FormatJSON, cfg.ConsoleFormat)
	assert.True(t, cfg.FileEnabled)
	assert.Equal(t, "/tmp/trainer.log", cfg.FilePath)
}

func TestApplyEnvIgnoresBadBool(t *testing.T) {
	t.Setenv("LOG_FILE_ENABLED", "sometimes")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.False(t, cfg.FileEnabled)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Level = "LOUD"
	cfg.ConsoleFormat = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestBuildFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "WARN"

	logger, closer := build(cfg, &buf)
	defer func() { _ = closer.Close() }()

	logger.Info("hidden")
	logger.Warn("shown", "slot", "weapon")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "slot=weapon")
}

func TestBuildWritesConsoleAndFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "trainer.log")

	cfg := DefaultConfig()
	cfg.ConsoleFormat = FormatJSON
	cfg.FileEnabled = true
	cfg.FilePath = path

	logger, closer := build(cfg, &buf)
	logger.With("plan_id", "plan_1").Info("Planned training route")
	require.NoError(t, closer.Close())

	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"plan_id":"plan_1"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Planned training route")
}

func TestBuildFallsBackToConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false

	logger, _ := build(cfg, &buf)
	logger.Info("still here")
	assert.Contains(t, buf.String(), "still here")
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	require.NoError(t, valid.Validate())

	cfg := DefaultConfig()
	cfg.Level = "loud"
	cfg.FileEnabled = true
	cfg.FilePath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{`unknown log level "loud"`}, fields["Level"])
	assert.Contains(t, fields, "FilePath")
}
