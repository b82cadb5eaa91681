package utils

import "strings"

// MatchDomain reports whether host equals domain or is one of its subdomains.
// "docs.go.dev" matches "go.dev" but "notgo.dev" does not. Matching is case-insensitive
// and ignores a trailing dot on either side.
func MatchDomain(host, domain string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	domain = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".")

	if domain == "" {
		return false
	}
	if host == domain {
		return true
	}
	return strings.HasSuffix(host, "."+domain)
}
