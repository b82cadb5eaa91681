package linkcheck

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
	"github.com/maksimkurb/quick-nav/src/internal/utils"
)

const defaultConcurrency = 8

// Result is the outcome of checking one site.
type Result struct {
	Site      models.Site
	Host      string
	Addresses []string
	Err       error
}

// OK reports whether the site's host resolved.
func (r Result) OK() bool {
	return r.Err == nil
}

// Checker resolves site hosts concurrently.
type Checker struct {
	resolver    Resolver
	concurrency int
}

// NewChecker creates a checker. A concurrency below 1 uses the default.
func NewChecker(resolver Resolver, concurrency int) *Checker {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Checker{resolver: resolver, concurrency: concurrency}
}

// Check resolves the host of every site and returns one result per site in
// input order. Each host is resolved once even if several sites share it.
// Per-site failures are reported in the results; the returned error is only
// set when ctx is cancelled.
func (c *Checker) Check(ctx context.Context, sites []models.Site) ([]Result, error) {
	results := make([]Result, len(sites))

	hosts := make(map[string][]int)
	for i, site := range sites {
		results[i].Site = site
		host, err := utils.SiteHost(site.URL)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Host = host
		hosts[host] = append(hosts[host], i)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for host, indexes := range hosts {
		host, indexes := host, indexes
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			addrs, err := c.resolver.Resolve(gctx, host)
			if err != nil {
				log.Debugf("Failed to resolve %s: %v", host, err)
			}

			mu.Lock()
			for _, i := range indexes {
				results[i].Addresses = addrs
				results[i].Err = err
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// Failed returns the results whose host did not resolve.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
