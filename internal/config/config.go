// Package config loads the rpg-trainer YAML configuration.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-trainer/internal/clients/osrsbox"
	"github.com/KirkDiggler/rpg-trainer/internal/engine/xptable"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/logger"
)

// Config is the root of the configuration file
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Redis    RedisConfig    `yaml:"redis"`
	Training TrainingConfig `yaml:"training"`
	Logging  logger.Config  `yaml:"logging"`
}

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	Port int `yaml:"port"`
	// ShutdownTimeout bounds graceful stop before a hard stop
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CatalogConfig holds item catalog retrieval settings
type CatalogConfig struct {
	BaseURL string `yaml:"base_url"`
	// Dir reads slot documents from disk instead of BaseURL
	Dir         string        `yaml:"dir"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

// RedisConfig holds the catalog cache connection. No endpoints means the
// cache is kept in memory.
type RedisConfig struct {
	Endpoints []string `yaml:"endpoints"`
	PoolSize  int      `yaml:"pool_size"`
	UseTLS    bool     `yaml:"use_tls"`
}

// TrainingConfig holds planner settings
type TrainingConfig struct {
	MaxLevel             int `yaml:"max_level"`
	OpponentDefenceLevel int `yaml:"opponent_defence_level"`
	OpponentDefenceBonus int `yaml:"opponent_defence_bonus"`
	// MaxExpansions bounds one search, 0 means unlimited
	MaxExpansions int `yaml:"max_expansions"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Catalog: CatalogConfig{
			BaseURL:     osrsbox.DefaultBaseURL,
			HTTPTimeout: osrsbox.DefaultHTTPTimeout,
			CacheTTL:    24 * time.Hour,
		},
		Redis: RedisConfig{
			PoolSize: 10,
		},
		Training: TrainingConfig{
			MaxLevel:             xptable.DefaultCap,
			OpponentDefenceLevel: 1,
			OpponentDefenceBonus: 0,
			MaxExpansions:        0,
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig reads path over the defaults and applies logging environment
// overrides. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	config.Logging.ApplyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout < 0 {
		vb.InvalidField("server.shutdown_timeout", "must not be negative")
	}

	if c.Catalog.Dir == "" {
		errors.ValidateRequired("catalog.base_url", c.Catalog.BaseURL, vb)
	}
	if c.Catalog.HTTPTimeout < 0 {
		vb.InvalidField("catalog.http_timeout", "must not be negative")
	}
	if c.Catalog.CacheTTL < 0 {
		vb.InvalidField("catalog.cache_ttl", "must not be negative")
	}

	if c.Redis.PoolSize < 0 {
		vb.InvalidField("redis.pool_size", "must not be negative")
	}

	errors.ValidateRange("training.max_level", c.Training.MaxLevel, 2, xptable.MaxCap, vb)
	errors.ValidateRange("training.opponent_defence_level", c.Training.OpponentDefenceLevel, 1, xptable.MaxCap, vb)
	if c.Training.OpponentDefenceBonus < -64 {
		vb.InvalidField("training.opponent_defence_bonus", "must be at least -64")
	}
	if c.Training.MaxExpansions < 0 {
		vb.InvalidField("training.max_expansions", "must not be negative")
	}

	if err := vb.Build(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "invalid logging config")
	}
	return nil
}
