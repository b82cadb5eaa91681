// Package domain defines core interfaces for dependency injection and abstraction.
//
// This package contains the fundamental interfaces that enable loose coupling between
// components and facilitate testing through dependency injection.
package domain

import (
	"context"

	"github.com/maksimkurb/quick-nav/src/internal/store"
)

// NavClient defines the interface for interacting with the navigation REST API.
//
// It is everything the store needs plus the site title lookup, which is
// read-only and bypasses the store.
type NavClient interface {
	store.API

	// GetSiteTitle returns the page title the server recorded for a site.
	GetSiteTitle(ctx context.Context, id int) (string, error)
}

// TitleFetcher extracts the title of a web page.
type TitleFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}
