// Package config loads the CLI's settings from UNIBLOG_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client"
)

// Config holds the settings shared by every uniblogctl command.
// Environment variables are parsed with the UNIBLOG_ prefix.
type Config struct {
	// Page location the CLI pretends to run under; drives base URL resolution.
	Host     string `envconfig:"HOST" default:""`
	Protocol string `envconfig:"PROTOCOL" default:"http"`
	Port     string `envconfig:"PORT" default:""`

	// BaseURL skips host inspection when set.
	BaseURL string `envconfig:"BASE_URL" default:""`

	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`

	// Token is sent as a bearer token on every call.
	Token string `envconfig:"TOKEN" default:""`
}

// New creates a Config by parsing environment variables.
// Example: UNIBLOG_HOST=localhost UNIBLOG_PORT=5173 UNIBLOG_TOKEN=...
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("UNIBLOG", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("host", cfg.Host).
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Bool("debug", cfg.Debug).
		Bool("token_present", cfg.Token != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate rejects settings the client would refuse anyway.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("UNIBLOG_TIMEOUT must be > 0, got %s", c.Timeout)
	}
	return nil
}

// ClientOptions translates the config into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{client.WithHTTPTimeout(c.Timeout)}
	if c.Host != "" {
		opts = append(opts, client.WithLocation(client.Location{Protocol: c.Protocol, Hostname: c.Host, Port: c.Port}))
	}
	if c.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(c.BaseURL))
	}
	if c.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	if c.Token != "" {
		opts = append(opts, client.WithBearerToken(c.Token))
	}
	return opts
}
