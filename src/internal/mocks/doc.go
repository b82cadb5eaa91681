// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
//
// NavServer is an in-memory implementation of the quick-nav REST API used to
// exercise the client and the store end to end. MockNavClient replaces the
// API client entirely when a test only needs canned results, and MockResolver
// stands in for DNS in link check tests.
package mocks
