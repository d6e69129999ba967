package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

var ErrInvalidPortalURL = errors.New("portal URL must be an absolute http(s) URL")

// Config holds the website configuration
type Config struct {
	// Server settings
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// External portal every call to action links to
	PortalURL string `env:"PORTAL_URL" envDefault:"https://portal.gideora.com"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address for net/http
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	u, err := url.Parse(c.PortalURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortalURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPortalURL, c.PortalURL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// LoadDotEnv loads .env files if present (for local development).
// .env.local overrides .env; neither overrides the real environment.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads configuration from environment variables without logging
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("portal_url", cfg.PortalURL),
	)

	return cfg, nil
}
