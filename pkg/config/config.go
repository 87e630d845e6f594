package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	FirebaseProject       string   `env:"FIREBASE_PROJECT_ID,required,notEmpty"`
	ServiceAccountJSON    string   `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountPath    string   `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	FirestoreEmulatorHost string   `env:"FIRESTORE_EMULATOR_HOST"`
	StorageBucket         string   `env:"STORAGE_BUCKET"`
	AllowedOrigins        []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	SMTP SMTPConfig

	EmailRateLimit float64 `env:"EMAIL_RATE_LIMIT" envDefault:"1"`
	EmailRateBurst int     `env:"EMAIL_RATE_BURST" envDefault:"5"`
}

// SMTPConfig carries the relay credentials. None of them has a default.
type SMTPConfig struct {
	Host      string `env:"SMTP_HOST,required,notEmpty"`
	Port      int    `env:"SMTP_PORT" envDefault:"587"`
	User      string `env:"SMTP_USER,required,notEmpty"`
	Password  string `env:"SMTP_PASSWORD,required,notEmpty"`
	FromEmail string `env:"FROM_EMAIL,required,notEmpty"`
}

var ErrMissingCredentials = errors.New("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH must be set")

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.ServiceAccountJSON == "" && cfg.ServiceAccountPath == "" && cfg.FirestoreEmulatorHost == "" {
		return nil, ErrMissingCredentials
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
