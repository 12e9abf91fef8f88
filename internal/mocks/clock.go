package mocks

import (
	"time"

	"biblio/internal/domain/service"
)

// FixedClock always reports the same instant, so time-dependent rules can be
// tested deterministically.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

var _ service.Clock = (*FixedClock)(nil)
