// Package utils provides small helpers shared across quick-nav packages.
//
//   - Host utilities: extract the host of a site URL and match it against a domain suffix
//   - File utilities: close readers and log failures
package utils
