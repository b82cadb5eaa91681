// Package config handles configuration file parsing and validation for quick-nav.
//
// The configuration is a TOML file with four sections:
//   - server: base URL of the navigation API and the request timeout
//   - reorder: how reordered categories are persisted and confirmed
//   - dashboard: fasttemplate formats used by the list command
//   - check: DNS resolver used by the link check
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/quick-nav.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//
// A missing file is not an error when the caller falls back to DefaultConfig,
// which is what the CLI does.
package config
