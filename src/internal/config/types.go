package config

import (
	"path/filepath"
	"time"
)

type Config struct {
	// Server holds the navigation API connection settings.
	Server *ServerConfig `toml:"server"`
	// Reorder controls how category moves are sent to the server.
	Reorder *ReorderConfig `toml:"reorder"`
	// Dashboard holds the output templates of the list command.
	Dashboard *DashboardConfig `toml:"dashboard"`
	// Check holds the link check settings.
	Check *CheckConfig `toml:"check"`

	_absConfigFilePath string
}

type ServerConfig struct {
	// BaseURL is the root URL of the navigation API, e.g. http://localhost:8080.
	BaseURL string `toml:"base_url" validate:"required,site_url"`
	// Timeout is the per-request timeout (default: 10s).
	Timeout string `toml:"timeout" validate:"required,duration"`
}

type ReorderConfig struct {
	// Strategy is "bulk" (send the whole sequence) or "single" (deprecated, send only the moved category).
	Strategy string `toml:"strategy" validate:"required,oneof=bulk single"`
	// Confirm is "refetch" (re-fetch the list after a successful move) or "optimistic".
	Confirm string `toml:"confirm" validate:"required,oneof=refetch optimistic"`
}

type DashboardConfig struct {
	// CategoryFormat renders a category header. Available variables: {{id}}, {{name}}, {{order}}, {{count}}.
	CategoryFormat string `toml:"category_format" validate:"required"`
	// SiteFormat renders a site line. Available variables: {{id}}, {{name}}, {{url}}, {{category_id}}, {{host}}.
	SiteFormat string `toml:"site_format" validate:"required"`
}

type CheckConfig struct {
	// Resolver is the DNS server used to resolve site hosts, host:port. Empty uses /etc/resolv.conf.
	Resolver string `toml:"resolver" validate:"hostport_or_empty"`
	// Concurrency is the number of hosts resolved in parallel (default: 8).
	Concurrency int `toml:"concurrency" validate:"min=1"`
}

// GetConfigPath returns the absolute path the config was loaded from or will be written to.
func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}

// SetConfigPath sets the path used by WriteConfig.
func (c *Config) SetConfigPath(path string) error {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return err
	}
	c._absConfigFilePath = abs
	return nil
}

// GetTimeout returns the parsed server timeout. Invalid values yield 0.
func (c *Config) GetTimeout() time.Duration {
	if c.Server == nil {
		return 0
	}
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil {
		return 0
	}
	return d
}
