// Package clock provides the time source that drives exercise sessions.
package clock

import "time"

// Ticker is the subset of time.Ticker the engine depends on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers and reports the current time.
// Tests substitute Manual to control time advancement.
type Clock interface {
	NewTicker(d time.Duration) Ticker
	Now() time.Time
}

// System is the Clock backed by the standard library.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }
