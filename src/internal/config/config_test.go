package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maksimkurb/quick-nav/src/internal/validation"
)

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[server
	base_url = "http://localhost"`

	err := os.WriteFile(configFile, []byte(invalidTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "valid.toml")

	validTOML := `[server]
base_url = "http://nav.lan:9000"
timeout = "3s"

[reorder]
strategy = "single"
confirm = "optimistic"

[check]
resolver = "1.1.1.1:53"`

	err := os.WriteFile(configFile, []byte(validTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if config.Server.BaseURL != "http://nav.lan:9000" {
		t.Errorf("Expected base_url to be 'http://nav.lan:9000', got %s", config.Server.BaseURL)
	}
	if config.GetTimeout() != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", config.GetTimeout())
	}
	if config.Reorder.Strategy != "single" || config.Reorder.Confirm != "optimistic" {
		t.Errorf("Unexpected reorder section %+v", config.Reorder)
	}
	if config.Dashboard == nil || config.Dashboard.SiteFormat != DefaultSiteFormat {
		t.Error("Expected missing dashboard section to keep defaults")
	}
	if config.Check.Concurrency != DefaultConcurrency {
		t.Errorf("Expected default concurrency, got %d", config.Check.Concurrency)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected valid config: %v", err)
	}
	if config.GetConfigPath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, config.GetConfigPath())
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	validTOML := `[server]
base_url = "http://localhost:8080"`

	err := os.WriteFile(configFile, []byte(validTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	os.Chdir(tmpDir)

	_, err = LoadConfig("config.toml")
	if err != nil {
		t.Errorf("Expected no error for relative path: %v", err)
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "missing.toml")

	config, err := LoadConfigOrDefault(configFile)
	if err != nil {
		t.Fatalf("Expected defaults for missing file: %v", err)
	}
	if config.Server.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %s", config.Server.BaseURL)
	}
	if config.GetConfigPath() != configFile {
		t.Errorf("Expected config path to be remembered, got %s", config.GetConfigPath())
	}
}

func TestSerializeConfig(t *testing.T) {
	buf, err := DefaultConfig().SerializeConfig()
	if err != nil {
		t.Fatalf("Failed to serialize config: %v", err)
	}

	content := buf.String()
	for _, want := range []string{"[server]", "base_url", "[reorder]", "strategy", "bulk"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected serialized config to contain %q, got:\n%s", want, content)
		}
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "test.toml")

	config := DefaultConfig()
	config.Server.BaseURL = "https://nav.example.com"
	if err := config.SetConfigPath(configFile); err != nil {
		t.Fatalf("SetConfigPath() error = %v", err)
	}

	if err := config.WriteConfig(); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loaded, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if loaded.Server.BaseURL != "https://nav.example.com" {
		t.Errorf("Expected base URL to survive a round trip, got %s", loaded.Server.BaseURL)
	}
}

func TestWriteConfig_NoPath(t *testing.T) {
	if err := DefaultConfig().WriteConfig(); err == nil {
		t.Error("Expected error when config path is not set")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *Config)
		wantFields []string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:       "relative base url",
			mutate:     func(c *Config) { c.Server.BaseURL = "localhost:8080" },
			wantFields: []string{"server.base_url"},
		},
		{
			name:       "bad timeout",
			mutate:     func(c *Config) { c.Server.Timeout = "soon" },
			wantFields: []string{"server.timeout"},
		},
		{
			name: "unknown strategy and confirm",
			mutate: func(c *Config) {
				c.Reorder.Strategy = "swap"
				c.Reorder.Confirm = "never"
			},
			wantFields: []string{"reorder.strategy", "reorder.confirm"},
		},
		{
			name:       "resolver without port",
			mutate:     func(c *Config) { c.Check.Resolver = "8.8.8.8" },
			wantFields: []string{"check.resolver"},
		},
		{
			name:       "missing section",
			mutate:     func(c *Config) { c.Dashboard = nil },
			wantFields: []string{"dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.ValidateConfig()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			var verrs validation.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Expected ValidationErrors, got %v", err)
			}
			if len(verrs) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %v", len(tt.wantFields), verrs)
			}
			for i, field := range tt.wantFields {
				if verrs[i].FieldPath != field {
					t.Errorf("Error %d: expected field %s, got %s", i, field, verrs[i].FieldPath)
				}
			}
		})
	}
}

func TestExampleConfig(t *testing.T) {
	configFile := filepath.Join("../../../quick-nav.example.toml")

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected example config to be valid: %v", err)
	}
}
