package mocks

import (
	"context"
	"errors"
	"sync"
)

// ErrUnknownHost is returned by MockResolver for hosts it was not told about.
var ErrUnknownHost = errors.New("unknown host")

// MockResolver is a mock host resolver for link check tests.
//
// Hosts found in Addresses resolve to the listed addresses, hosts in Errors
// fail with the given error, anything else calls ResolveFunc or fails with
// ErrUnknownHost.
type MockResolver struct {
	Addresses   map[string][]string
	Errors      map[string]error
	ResolveFunc func(ctx context.Context, host string) ([]string, error)

	mu      sync.Mutex
	queries []string
}

// Resolve implements the resolver interface.
func (m *MockResolver) Resolve(ctx context.Context, host string) ([]string, error) {
	m.mu.Lock()
	m.queries = append(m.queries, host)
	m.mu.Unlock()

	if err, ok := m.Errors[host]; ok {
		return nil, err
	}
	if addrs, ok := m.Addresses[host]; ok {
		return addrs, nil
	}
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, host)
	}
	return nil, ErrUnknownHost
}

// Queries returns every host passed to Resolve, in call order.
func (m *MockResolver) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}
