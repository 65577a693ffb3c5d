package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hperssn/drill/internal/domain"
)

// CompletionSink receives the completion record of a finished session.
type CompletionSink interface {
	SaveCompletion(ctx context.Context, record domain.CompletionRecord) error
}

// Navigator is told when the owning screen should leave the session.
type Navigator interface {
	Leave(outcome domain.Outcome)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(outcome domain.Outcome)

func (f NavigatorFunc) Leave(outcome domain.Outcome) { f(outcome) }

// notifier builds the completion record once per session and hands it to the
// sink.
type notifier struct {
	sink    CompletionSink
	timeout time.Duration
	log     zerolog.Logger
	fired   bool
}

// claim returns the record to deliver, or false if one was already claimed.
// Callers hold the session lock.
func (n *notifier) claim(sessionID, userID string, exercise domain.Exercise, at time.Time) (domain.CompletionRecord, bool) {
	if n.fired {
		n.log.Warn().Msg("completion already recorded, ignoring")
		return domain.CompletionRecord{}, false
	}
	n.fired = true
	return domain.NewCompletionRecord(sessionID, userID, exercise.ID, exercise.Points, at), true
}

// deliver runs without the session lock so sinks may read the session back.
func (n *notifier) deliver(ctx context.Context, record domain.CompletionRecord) {
	if n.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.sink.SaveCompletion(ctx, record); err != nil {
		n.log.Error().Err(err).Str("record_id", record.ID).Msg("failed to save completion")
		return
	}
	n.log.Info().
		Str("record_id", record.ID).
		Int("points", record.PointsEarned).
		Msg("completion recorded")
}
