// Package service defines interfaces for core, stateless domain logic and the
// ports the engine consumes. Implementations live under internal/infra.
package service

import "time"

// Ticker is the subset of time.Ticker the engine relies on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock abstracts wall time so polling and expiry can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}
