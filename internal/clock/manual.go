package clock

import (
	"sync"
	"time"
)

// Manual is a Clock that only moves when Advance is called.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTicker{
		clock:    m,
		interval: d,
		next:     m.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	m.tickers = append(m.tickers, t)
	return t
}

// Advance moves the clock forward and fires every ticker whose deadline has
// passed. Like time.Ticker, a tick is dropped when the receiver is behind.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
	for _, t := range m.tickers {
		for !t.next.After(m.now) {
			select {
			case t.ch <- t.next:
			default:
			}
			t.next = t.next.Add(t.interval)
		}
	}
}

// Tickers reports how many tickers are currently running.
func (m *Manual) Tickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

func (m *Manual) remove(t *manualTicker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, candidate := range m.tickers {
		if candidate == t {
			m.tickers = append(m.tickers[:i], m.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock    *Manual
	interval time.Duration
	next     time.Time
	ch       chan time.Time
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() { t.clock.remove(t) }
