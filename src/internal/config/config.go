package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/quick-nav/src/internal/log"
)

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultTimeout        = "10s"
	DefaultStrategy       = "bulk"
	DefaultConfirm        = "refetch"
	DefaultCategoryFormat = "[{{order}}] {{name}} (#{{id}}, {{count}} sites)"
	DefaultSiteFormat     = "    #{{id}} {{name}}  {{url}}"
	DefaultConcurrency    = 8
)

// DefaultConfig returns a configuration with every section filled in.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Reorder: &ReorderConfig{
			Strategy: DefaultStrategy,
			Confirm:  DefaultConfirm,
		},
		Dashboard: &DashboardConfig{
			CategoryFormat: DefaultCategoryFormat,
			SiteFormat:     DefaultSiteFormat,
		},
		Check: &CheckConfig{
			Concurrency: DefaultConcurrency,
		},
	}
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s: %w", configFile, os.ErrNotExist)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.fillDefaults()
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Server base URL: %s", config.Server.BaseURL)

	return config, nil
}

// LoadConfigOrDefault loads configPath, falling back to DefaultConfig when the file does not exist.
func LoadConfigOrDefault(configPath string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("Configuration file %s not found, using defaults", configPath)
		cfg = DefaultConfig()
		if err := cfg.SetConfigPath(configPath); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// fillDefaults restores sections that were present in the file but empty,
// e.g. "[check]" with no keys.
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Server == nil {
		c.Server = d.Server
	}
	if c.Reorder == nil {
		c.Reorder = d.Reorder
	}
	if c.Dashboard == nil {
		c.Dashboard = d.Dashboard
	}
	if c.Check == nil {
		c.Check = d.Check
	}
	if c.Check.Concurrency == 0 {
		c.Check.Concurrency = DefaultConcurrency
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	if c._absConfigFilePath == "" {
		return fmt.Errorf("config path is not set")
	}
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c._absConfigFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %v", err)
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}
