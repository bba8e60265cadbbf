package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-trainer/internal/config"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, key := range []string{"LOG_LEVEL", "LOG_CONSOLE_FORMAT", "LOG_FILE_ENABLED", "LOG_FILE_PATH"} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) write(content string) string {
	path := filepath.Join(s.dir, "trainer.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestMissingFileUsesDefaults() {
	cfg, err := config.LoadConfig(filepath.Join(s.dir, "absent.yaml"))
	s.Require().NoError(err)
	s.Equal(config.DefaultConfig(), cfg)
}

func (s *ConfigTestSuite) TestEmptyPathUsesDefaults() {
	cfg, err := config.LoadConfig("")
	s.Require().NoError(err)
	s.Equal(50051, cfg.Server.Port)
	s.Equal(99, cfg.Training.MaxLevel)
}

func (s *ConfigTestSuite) TestLoadOverridesDefaults() {
	path := s.write(`
server:
  port: 6000
catalog:
  dir: ./testdata/osrsbox
  cache_ttl: 2h
redis:
  endpoints: ["localhost:6379"]
training:
  max_level: 120
  opponent_defence_level: 20
  opponent_defence_bonus: 15
  max_expansions: 500000
logging:
  level: DEBUG
  console_enabled: true
  console_format: json
`)

	cfg, err := config.LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(6000, cfg.Server.Port)
	s.Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Equal("./testdata/osrsbox", cfg.Catalog.Dir)
	s.Equal(2*time.Hour, cfg.Catalog.CacheTTL)
	s.Equal([]string{"localhost:6379"}, cfg.Redis.Endpoints)
	s.Equal(120, cfg.Training.MaxLevel)
	s.Equal(20, cfg.Training.OpponentDefenceLevel)
	s.Equal(15, cfg.Training.OpponentDefenceBonus)
	s.Equal(500000, cfg.Training.MaxExpansions)
	s.Equal("DEBUG", cfg.Logging.Level)
	s.Equal("json", cfg.Logging.ConsoleFormat)
}

func (s *ConfigTestSuite) TestEnvOverridesLogging() {
	s.T().Setenv("LOG_LEVEL", "ERROR")

	cfg, err := config.LoadConfig(s.write("logging:\n  level: DEBUG\n  console_enabled: true\n"))
	s.Require().NoError(err)
	s.Equal("ERROR", cfg.Logging.Level)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "bad port", content: "server:\n  port: 70000\n"},
		{name: "cap too high", content: "training:\n  max_level: 200\n"},
		{name: "opponent level", content: "training:\n  opponent_defence_level: 0\n"},
		{name: "negative budget", content: "training:\n  max_expansions: -5\n"},
		{name: "log format", content: "logging:\n  console_format: xml\n"},
		{name: "malformed yaml", content: "server: [1, 2\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.LoadConfig(s.write(tc.content))
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(cfg)
		})
	}
}
