// Package config loads process configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RPG_TOOLTIPS_"

// Config is the process configuration. Add-on settings stored in Redis take
// precedence over Enabled, SystemID and Types once they exist.
type Config struct {
	Enabled            bool            `env:"ENABLED" envDefault:"true"`
	SystemID           string          `env:"SYSTEM_ID" envDefault:"marvel-multiverse"`
	Types              map[string]bool `env:"TYPES"`
	Locale             string          `env:"LOCALE" envDefault:"en"`
	RedisAddr          string          `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CompendiumURL      string          `env:"COMPENDIUM_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	CompendiumCacheTTL time.Duration   `env:"COMPENDIUM_CACHE_TTL" envDefault:"24h"`
	LogLevel           string          `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env files when present, then the environment
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		// Existing variables win over .env entries.
		if err := godotenv.Load(f); err != nil {
			slog.Debug("no env file loaded", "file", f, "error", err)
		}
	}

	return Parse()
}

// Parse reads configuration from the environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("SystemID", c.SystemID, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)

	var probe settings.TypeVisibility
	for name := range c.Types {
		if !probe.Set(name, true) {
			vb.Field("Types", "unknown type "+name)
		}
	}

	if _, err := c.SlogLevel(); err != nil {
		vb.Field("LogLevel", "must be debug, info, warn or error")
	}
	if c.CompendiumCacheTTL < 0 {
		vb.Field("CompendiumCacheTTL", "must not be negative")
	}

	return vb.Build()
}

// Settings returns the add-on settings described by the environment.
// Types not listed keep their default of visible.
func (c *Config) Settings() *settings.Settings {
	s := settings.Defaults()
	s.Enabled = c.Enabled
	s.SystemID = strings.TrimSpace(c.SystemID)
	for name, visible := range c.Types {
		s.Types.Set(name, visible)
	}
	return s
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
