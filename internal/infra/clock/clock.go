// Package clock provides the wall clock and a manual clock for tests.
package clock

import (
	"time"

	"lastseen/internal/domain/service"
)

type realClock struct{}

// New returns the system clock.
func New() service.Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) NewTicker(d time.Duration) service.Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time {
	return r.t.C
}

func (r *realTicker) Stop() {
	r.t.Stop()
}
