// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported values for STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

// Config holds every setting read at startup.
type Config struct {
	Addr          string `env:"ADDR" envDefault:"127.0.0.1:5000"`
	StoreDriver   string `env:"STORE_DRIVER" envDefault:"sqlite"`
	DBPath        string `env:"DB_PATH" envDefault:"messages.db"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DynamoDBTable string `env:"DYNAMODB_TABLE"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"INFO"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
}

// Load reads optional .env files and parses the environment into a Config.
func Load(dotenvFiles ...string) (Config, error) {
	// .env は任意。存在しなくてもエラーにしない
	_ = godotenv.Load(dotenvFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if cfg.Debug {
		cfg.LogLevel = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot start a server.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("ADDR is required")
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverDynamoDB:
		if strings.TrimSpace(c.DynamoDBTable) == "" {
			return errors.New("DYNAMODB_TABLE is required for the dynamodb driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
