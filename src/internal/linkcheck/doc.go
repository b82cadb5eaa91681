// Package linkcheck resolves the hosts of saved sites and reports the ones
// that do not resolve. It is read-only: nothing is sent to the navigation API.
package linkcheck
