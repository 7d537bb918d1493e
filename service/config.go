package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8000"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8000"`
	DBPath      string `env:"DB_PATH" envDefault:"./db/clubhub.db"`

	Clerk struct {
		SecretKey      string `env:"SECRET_KEY"`
		PublishableKey string `env:"PUBLISHABLE_KEY"`
	} `envPrefix:"CLERK_"`

	Cloudinary struct {
		CloudName string `env:"CLOUD_NAME" envDefault:"demo"`
	} `envPrefix:"CLOUDINARY_"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SecureCookies   bool          `env:"SECURE_COOKIES" envDefault:"false"`
}

// LoadConfig reads the environment, seeded from .env when one exists.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.IsProduction() {
		if c.Clerk.SecretKey == "" {
			return errors.New("CLERK_SECRET_KEY is required in production")
		}
		if !c.SecureCookies {
			return errors.New("SECURE_COOKIES must be enabled in production")
		}
	}
	return nil
}
