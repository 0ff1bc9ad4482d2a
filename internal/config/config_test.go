package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/config"
	"github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Parse()
	s.Require().NoError(err)

	s.Assert().True(cfg.Enabled)
	s.Assert().Equal("marvel-multiverse", cfg.SystemID)
	s.Assert().Equal("localhost:6379", cfg.RedisAddr)
	s.Assert().Equal(24*time.Hour, cfg.CompendiumCacheTTL)
	s.Assert().Equal(settings.AllVisible(), cfg.Settings().Types)

	level, err := cfg.SlogLevel()
	s.Require().NoError(err)
	s.Assert().Equal(slog.LevelInfo, level)
}

func (s *ConfigTestSuite) TestFromEnvironment() {
	s.T().Setenv("RPG_TOOLTIPS_ENABLED", "false")
	s.T().Setenv("RPG_TOOLTIPS_SYSTEM_ID", "dnd5e")
	s.T().Setenv("RPG_TOOLTIPS_TYPES", "power:false,Item:false")
	s.T().Setenv("RPG_TOOLTIPS_LOG_LEVEL", "debug")
	s.T().Setenv("RPG_TOOLTIPS_COMPENDIUM_CACHE_TTL", "90m")

	cfg, err := config.Parse()
	s.Require().NoError(err)

	st := cfg.Settings()
	s.Assert().False(st.Enabled)
	s.Assert().Equal("dnd5e", st.SystemID)
	s.Assert().False(st.Types.Power)
	s.Assert().False(st.Types.Item)
	s.Assert().True(st.Types.Trait)
	s.Assert().Equal(90*time.Minute, cfg.CompendiumCacheTTL)
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name   string
		key    string
		value  string
		expect string
	}{
		{name: "unknown type", key: "RPG_TOOLTIPS_TYPES", value: "weapon:true", expect: "unknown type weapon"},
		{name: "bad level", key: "RPG_TOOLTIPS_LOG_LEVEL", value: "loud", expect: "LogLevel"},
		{name: "blank system", key: "RPG_TOOLTIPS_SYSTEM_ID", value: " ", expect: "SystemID: is required"},
		{name: "unparseable bool", key: "RPG_TOOLTIPS_ENABLED", value: "maybe", expect: "parse env"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			_, err := config.Parse()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.expect)
		})
	}
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("RPG_TOOLTIPS_LOCALE=de\n"), 0o600))
	s.T().Cleanup(func() { _ = os.Unsetenv("RPG_TOOLTIPS_LOCALE") })

	cfg, err := config.Load(path, filepath.Join(dir, "missing.env"))
	s.Require().NoError(err)
	s.Assert().Equal("de", cfg.Locale)
}
