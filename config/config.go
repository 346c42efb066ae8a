// Package config loads application settings from environment variables
// via envconfig. godotenv fills the environment from .env in main first.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host string `envconfig:"HOST" default:"127.0.0.1"`
	Port string `envconfig:"PORT" default:"3000"`

	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"cardops"`
	DBPassword    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" default:"cardops"`
	DBSSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	DBAutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHrs  int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`
	CookieSecure bool   `envconfig:"COOKIE_SECURE" default:"false"`

	// USDT conversion rate applied to payable salary amounts. Externally
	// supplied, never computed.
	USDTRate float64 `envconfig:"USDT_RATE" default:"1.0"`

	LogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	if c.TokenTTLHrs <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be > 0")
	}
	if c.USDTRate <= 0 {
		return fmt.Errorf("USDT_RATE must be > 0")
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
