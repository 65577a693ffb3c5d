package clock

import (
	"sync"
	"time"
)

// Tick is one time-advance event. Gen identifies the activation of the
// Source that produced it.
type Tick struct {
	Gen uint64
	At  time.Time
}

// Source emits ticks at a fixed interval while active. At most one ticker
// goroutine exists per Source.
//
// A tick already in flight when Stop returns still reaches the handler, so
// consumers must check Live(tick.Gen) under the same lock they hold when
// calling Stop. Every Start or Stop retires the previous generation.
type Source struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	handler  func(Tick)
	gen      uint64
	active   bool
	stop     chan struct{}
}

func NewSource(c Clock, interval time.Duration, handler func(Tick)) *Source {
	if c == nil {
		c = System
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Source{
		clock:    c,
		interval: interval,
		handler:  handler,
	}
}

// Start activates the source. Starting an active source is a no-op.
func (s *Source) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.gen++
	s.active = true
	s.stop = make(chan struct{})

	ticker := s.clock.NewTicker(s.interval)
	go s.run(s.gen, ticker, s.stop)
}

// Stop deactivates the source. Stopping an inactive source is a no-op.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.gen++
	s.active = false
	close(s.stop)
}

func (s *Source) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Live reports whether gen belongs to the current activation.
func (s *Source) Live(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.gen == gen
}

func (s *Source) run(gen uint64, ticker Ticker, stop <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case at := <-ticker.C():
			select {
			case <-stop:
				return
			default:
			}
			s.handler(Tick{Gen: gen, At: at})
		}
	}
}
