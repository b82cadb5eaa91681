package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/maksimkurb/quick-nav/src/internal/commands"
	"github.com/maksimkurb/quick-nav/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&ctx.ServerURL, "server", "", "Navigation API base URL (overrides server.base_url)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Quick Navigation Bookmark Manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  list                    Show categories with their sites\n")
		fmt.Fprintf(os.Stderr, "  add-category            Create a category (-name)\n")
		fmt.Fprintf(os.Stderr, "  rename-category         Rename a category (-id -name)\n")
		fmt.Fprintf(os.Stderr, "  delete-category         Delete a category and its sites (-id)\n")
		fmt.Fprintf(os.Stderr, "  move-category           Reorder a category (-id with -dir up|down or -to N)\n")
		fmt.Fprintf(os.Stderr, "  add-site                Create a site (-url -category [-name])\n")
		fmt.Fprintf(os.Stderr, "  update-site             Change a site (-id [-name] [-url] [-category])\n")
		fmt.Fprintf(os.Stderr, "  delete-site             Delete a site (-id)\n")
		fmt.Fprintf(os.Stderr, "  site-title              Show the page title of a site (-id)\n")
		fmt.Fprintf(os.Stderr, "  check                   Resolve every site host and report failures\n")
		fmt.Fprintf(os.Stderr, "  init-config             Write a default configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.Context = runCtx

	cmds := []commands.Runner{
		commands.CreateListCommand(),
		commands.CreateAddCategoryCommand(),
		commands.CreateRenameCategoryCommand(),
		commands.CreateDeleteCategoryCommand(),
		commands.CreateMoveCategoryCommand(),
		commands.CreateAddSiteCommand(),
		commands.CreateUpdateSiteCommand(),
		commands.CreateDeleteSiteCommand(),
		commands.CreateSiteTitleCommand(),
		commands.CreateCheckCommand(),
		commands.CreateInitConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "quick-nav", "quick-nav.toml")
	}
	return "quick-nav.toml"
}
