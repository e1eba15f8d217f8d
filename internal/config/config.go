package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"launchpad/internal/config/configs"
)

// Config is the launchpad service configuration, read from the
// environment. Each section parses its variables under its own prefix.
type Config struct {
	// Env names the deployment (prod, dev, ...). It is attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Launchpad configs.Launchpad `envPrefix:"LAUNCHPAD_"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Launchpad.EscrowAccount == "" {
		errs = append(errs, errors.New("LAUNCHPAD_ESCROW_ACCOUNT must not be empty"))
	}
	if c.Launchpad.LockTimeout < 0 {
		errs = append(errs, errors.New("LAUNCHPAD_LOCK_TIMEOUT must not be negative"))
	}
	if !c.Launchpad.InMemory() && !c.Launchpad.OnPostgres() {
		errs = append(errs, fmt.Errorf("unknown LAUNCHPAD_STORAGE %q", c.Launchpad.Storage))
	}
	return errors.Join(errs...)
}
