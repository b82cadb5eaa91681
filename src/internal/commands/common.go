package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/quick-nav/src/internal/config"
	"github.com/maksimkurb/quick-nav/src/internal/domain"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// ServerURL overrides server.base_url when set.
	ServerURL string

	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
	// Deps replaces the dependencies built from the configuration, for tests.
	Deps *domain.AppDependencies
	// Context is the parent context of every request. Defaults to context.Background().
	Context context.Context
}

func (ctx *AppContext) out() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

func (ctx *AppContext) requestContext() context.Context {
	if ctx.Context == nil {
		return context.Background()
	}
	return ctx.Context
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// A missing file falls back to the defaults so the CLI works without one.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	cfg, err := config.LoadConfigOrDefault(ctx.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if ctx.ServerURL != "" {
		cfg.Server.BaseURL = ctx.ServerURL
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// initDependencies returns the injected dependencies or builds them from the configuration.
func initDependencies(ctx *AppContext) (*domain.AppDependencies, error) {
	if ctx.Deps != nil {
		return ctx.Deps, nil
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return nil, err
	}

	deps, err := domain.NewAppDependenciesFromConfig(cfg, ctx.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %v", err)
	}
	return deps, nil
}

func requirePositive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("-%s is required and must be > 0", name)
	}
	return nil
}
