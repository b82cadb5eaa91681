package domain

import (
	"sync"
	"time"

	"github.com/maksimkurb/quick-nav/src/internal/client"
	"github.com/maksimkurb/quick-nav/src/internal/config"
	"github.com/maksimkurb/quick-nav/src/internal/dashboard"
	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/linkcheck"
	"github.com/maksimkurb/quick-nav/src/internal/sitetitle"
	"github.com/maksimkurb/quick-nav/src/internal/store"
)

var errNoResolver = errors.NewConfigError("no DNS resolver configured", nil)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// This container provides a centralized place to manage dependencies and enables:
//   - Easy testing with mock implementations
//   - Configuration-driven dependency creation
//
// Usage:
//
//	deps, err := domain.NewAppDependencies(domain.AppConfig{
//	    BaseURL: "http://localhost:8080",
//	})
//	st := deps.Store()
type AppDependencies struct {
	navClient    NavClient
	store        *store.Store
	titleFetcher TitleFetcher
	renderer     *dashboard.Renderer

	resolverAddr string
	concurrency  int

	checkerOnce sync.Once
	resolver    linkcheck.Resolver
	resolverErr error
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// BaseURL is the root URL of the navigation API.
	// If empty, config.DefaultBaseURL is used.
	BaseURL string

	// Timeout is the per-request timeout. Zero uses client.DefaultTimeout.
	Timeout time.Duration

	// StoreOptions selects the reorder strategy and confirm mode.
	StoreOptions store.Options

	// CategoryFormat and SiteFormat are the dashboard templates.
	// Empty values use the config defaults.
	CategoryFormat string
	SiteFormat     string

	// Resolver is the DNS server for link checks, empty for /etc/resolv.conf.
	Resolver string
	// CheckConcurrency is the number of hosts resolved in parallel.
	CheckConcurrency int
}

// NewAppDependencies creates a new dependency container with production implementations.
//
// The DNS resolver is created on first use by Checker, so commands that never
// check links do not depend on /etc/resolv.conf.
func NewAppDependencies(cfg AppConfig) (*AppDependencies, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = client.DefaultTimeout
	}
	if cfg.CategoryFormat == "" {
		cfg.CategoryFormat = config.DefaultCategoryFormat
	}
	if cfg.SiteFormat == "" {
		cfg.SiteFormat = config.DefaultSiteFormat
	}

	renderer, err := dashboard.NewRenderer(cfg.CategoryFormat, cfg.SiteFormat)
	if err != nil {
		return nil, err
	}

	navClient := client.NewWithTimeout(cfg.BaseURL, cfg.Timeout)

	return &AppDependencies{
		navClient:    navClient,
		store:        store.New(navClient, cfg.StoreOptions),
		titleFetcher: sitetitle.New(nil),
		renderer:     renderer,
		resolverAddr: cfg.Resolver,
		concurrency:  cfg.CheckConcurrency,
	}, nil
}

// NewAppDependenciesFromConfig creates dependencies from a loaded configuration file.
// A non-empty serverURL overrides server.base_url.
func NewAppDependenciesFromConfig(cfg *config.Config, serverURL string) (*AppDependencies, error) {
	baseURL := cfg.Server.BaseURL
	if serverURL != "" {
		baseURL = serverURL
	}

	strategy, err := store.ParseStrategy(cfg.Reorder.Strategy)
	if err != nil {
		return nil, err
	}
	confirm, err := store.ParseConfirmMode(cfg.Reorder.Confirm)
	if err != nil {
		return nil, err
	}

	return NewAppDependencies(AppConfig{
		BaseURL:          baseURL,
		Timeout:          cfg.GetTimeout(),
		StoreOptions:     store.Options{Strategy: strategy, Confirm: confirm},
		CategoryFormat:   cfg.Dashboard.CategoryFormat,
		SiteFormat:       cfg.Dashboard.SiteFormat,
		Resolver:         cfg.Check.Resolver,
		CheckConcurrency: cfg.Check.Concurrency,
	})
}

// NewTestDependencies creates a dependency container with mock implementations.
//
// This is a convenience method for testing. Provide mock implementations for
// any dependencies you want to control in your tests; a nil titleFetcher or
// resolver makes the matching feature fail.
func NewTestDependencies(
	navClient NavClient,
	opts store.Options,
	titleFetcher TitleFetcher,
	resolver linkcheck.Resolver,
) *AppDependencies {
	renderer, _ := dashboard.NewRenderer(config.DefaultCategoryFormat, config.DefaultSiteFormat)

	deps := &AppDependencies{
		navClient:    navClient,
		store:        store.New(navClient, opts),
		titleFetcher: titleFetcher,
		renderer:     renderer,
		resolver:     resolver,
	}
	deps.checkerOnce.Do(func() {})
	return deps
}

// NavClient returns the navigation API client.
func (d *AppDependencies) NavClient() NavClient {
	return d.navClient
}

// Store returns the session state store.
func (d *AppDependencies) Store() *store.Store {
	return d.store
}

// TitleFetcher returns the page title fetcher.
func (d *AppDependencies) TitleFetcher() TitleFetcher {
	return d.titleFetcher
}

// Renderer returns the dashboard renderer.
func (d *AppDependencies) Renderer() *dashboard.Renderer {
	return d.renderer
}

// Checker returns a link checker, creating the DNS resolver on first call.
func (d *AppDependencies) Checker() (*linkcheck.Checker, error) {
	d.checkerOnce.Do(func() {
		r, err := linkcheck.NewDNSResolver(d.resolverAddr)
		if err != nil {
			d.resolverErr = err
			return
		}
		d.resolver = r
	})

	if d.resolverErr != nil {
		return nil, d.resolverErr
	}
	if d.resolver == nil {
		return nil, errNoResolver
	}
	return linkcheck.NewChecker(d.resolver, d.concurrency), nil
}
