// Package common defines shared sentinel errors used across the puller
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Store reachability (the read probe before a sync pass).
	ErrStoreUnavailable = errors.New("attendance store unavailable")

	// Device connectivity (no candidate configuration succeeded).
	ErrAllCandidatesFailed = errors.New("all device connection candidates failed")
)
