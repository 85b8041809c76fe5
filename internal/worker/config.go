// Package worker provides background job processing for ShipFare.
package worker

import "time"

// RefreshConfig holds configuration for the zone rate refresh job.
type RefreshConfig struct {
	// Timeout bounds a single reload from the rate store.
	// Default: 30 seconds.
	Timeout time.Duration

	// Interval is the periodic reload cadence used as a fallback when
	// no Pub/Sub trigger arrives. Zero disables periodic reloads.
	// Default: 6 hours.
	Interval time.Duration
}

// DefaultRefreshConfig returns the default refresh configuration.
// Rate cards change a few times a year; the operator console publishes
// a refresh message on edit, and the periodic reload only covers a
// missed message.
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Timeout:  30 * time.Second,
		Interval: 6 * time.Hour,
	}
}
