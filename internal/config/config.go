package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string `env:"MONGO_URI"`
	DBName    string `env:"DB_NAME" envDefault:"joblane"`
	JWTSecret string `env:"JWT_SECRET"`
	Host      string `env:"HOST" envDefault:"0.0.0.0"`
	Port      string `env:"PORT" envDefault:"3000"`
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing required settings are reported together.
func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var errs *multierror.Error
	if cfg.MongoURI == "" {
		errs = multierror.Append(errs, errors.New("MONGO_URI environment variable is required"))
	}
	if cfg.JWTSecret == "" {
		errs = multierror.Append(errs, errors.New("JWT_SECRET environment variable is required"))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return cfg, nil
}
