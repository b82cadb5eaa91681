// Package log provides simple leveled logging for quick-nav.
//
// Four levels are supported: DEBUG, INFO, WARN and ERROR. Debug messages are
// only printed in verbose mode. Errors always go to the error stream, the
// other levels go to the regular output unless SetForceStdErr is enabled.
//
// # Example Usage
//
//	log.Infof("Loaded %d categories", len(categories))
//	log.Warnf("Site %d references unknown category %d", site.ID, site.CategoryID)
//	log.Errorf("Failed to persist category order: %v", err)
//
// Enabling verbose mode for request tracing:
//
//	log.SetVerbose(true)
//	log.Debugf("PUT %s", endpoint)
//
// Redirecting output, mostly useful in tests:
//
//	var out, errOut bytes.Buffer
//	log.SetOutput(&out, &errOut)
//
// All functions are safe for concurrent use.
package log
