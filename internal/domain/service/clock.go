// Package service defines interfaces for domain collaborators provided by
// the infrastructure layer.
package service

import "time"

// Clock supplies the current time to services that do date math, so loan
// and fine calculations stay deterministic in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
