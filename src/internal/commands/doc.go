// Package commands implements CLI command handlers for quick-nav.
//
// Each command implements the Runner interface and delegates to the state
// store, the link checker or the title fetcher held by domain.AppDependencies.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments, load configuration and build dependencies
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - list: Show categories with their sites
//   - add-category, rename-category, delete-category, move-category
//   - add-site, update-site, delete-site, site-title
//   - check: Resolve every site host and report the failing ones
//   - init-config: Write a default configuration file
//
// # Example Usage
//
//	cmd := commands.CreateListCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/quick-nav.toml",
//	}
//	if err := cmd.Init([]string{"-domain", "go.dev"}, ctx); err != nil {
//	    log.Fatalf("Failed to initialize: %v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("Failed to run: %v", err)
//	}
package commands
