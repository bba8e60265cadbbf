package logger

import (
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig logs INFO text to stdout only
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  FormatText,
		FileEnabled:    false,
		FilePath:       "logs/rpg-trainer.log",
		FileFormat:     FormatJSON,
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// ApplyEnv overrides fields from LOG_LEVEL, LOG_CONSOLE_FORMAT,
// LOG_FILE_ENABLED and LOG_FILE_PATH when they are set
func (c *Config) ApplyEnv() {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Level = logLevel
	}

	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		c.ConsoleFormat = consoleFormat
	}

	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			c.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		c.FilePath = filePath
	}
}

// Validate checks level and formats
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := levels[strings.ToUpper(c.Level)]; !ok {
		vb.Fieldf("Level", "unknown log level %q", c.Level)
	}
	errors.ValidateEnum("ConsoleFormat", c.ConsoleFormat, []string{FormatText, FormatJSON}, vb)
	if c.FileEnabled {
		errors.ValidateRequired("FilePath", c.FilePath, vb)
		errors.ValidateEnum("FileFormat", c.FileFormat, []string{FormatText, FormatJSON}, vb)
	}

	return vb.Build()
}
