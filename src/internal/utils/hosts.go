package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// SiteHost returns the lowercased host of a site URL without port or brackets.
func SiteHost(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}

	return strings.TrimSuffix(strings.ToLower(host), "."), nil
}
