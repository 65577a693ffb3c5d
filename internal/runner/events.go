package runner

import (
	"time"

	"github.com/hperssn/drill/internal/domain"
)

// EventType defines the kind of session update.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventLeave       EventType = "leave"
)

// Event carries a session update to observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Outcome  *domain.Outcome
	At       time.Time
}

// Subscribe registers an observer. Sends never block the session, so a slow
// reader misses events rather than stalling ticks. The channel is closed when
// the session is torn down.
func (s *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.events = append(s.events, ch)
	return ch
}

func (s *Session) emitLocked(typ EventType, outcome *domain.Outcome) {
	event := Event{
		Type:     typ,
		Snapshot: s.snapshotLocked(),
		Outcome:  outcome,
		At:       s.clock.Now(),
	}
	for _, ch := range s.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (s *Session) closeEventsLocked() {
	for _, ch := range s.events {
		close(ch)
	}
	s.events = nil
}
