// Package config loads statroll settings from the environment
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Config holds the settings command-line flags may override
type Config struct {
	// HistoryCapacity is how many roll sets the roller remembers
	HistoryCapacity int `env:"STATROLL_HISTORY_CAPACITY" envDefault:"5"`

	// Seed makes rolls replayable. Zero uses the crypto source.
	Seed int64 `env:"STATROLL_SEED" envDefault:"0"`

	// RulesetPath points at a YAML ruleset. Empty uses the built-in rules.
	RulesetPath string `env:"STATROLL_RULESET"`

	// DieKind selects the registry entry dice are built from
	DieKind string `env:"STATROLL_DIE_KIND" envDefault:"uniform"`

	LogLevel string `env:"STATROLL_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to parse environment")
	}
	return nil
}

// Load reads and validates the configuration
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks the configured values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("HistoryCapacity", c.HistoryCapacity, 1, vb)
	errors.ValidateRequired("DieKind", c.DieKind, vb)
	if _, err := c.Level(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// Level parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

// RollerConfig returns the history settings for a dice.Roller. The clock
// and ID generator are left for the caller to fill in.
func (c *Config) RollerConfig() *dice.RollerConfig {
	return &dice.RollerConfig{
		HistoryCapacity: c.HistoryCapacity,
	}
}
