// Package runner executes a single timed exercise session.
//
// A Session owns its clock Source and is the only thing that starts or stops
// it. Every command is total: a command that makes no sense in the current
// status is a no-op. Elapsed seconds are the single source of truth and all
// rendering inputs are projected from them.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hperssn/drill/internal/clock"
	"github.com/hperssn/drill/internal/domain"
)

const defaultSaveTimeout = 5 * time.Second

// Options configure a Session. Zero values fall back to defaults.
type Options struct {
	ID           string
	UserID       string
	Clock        clock.Clock
	TickInterval time.Duration
	SaveTimeout  time.Duration
	Sink         CompletionSink
	Navigator    Navigator
	Logger       *zerolog.Logger
}

// Snapshot is the read-only view a screen renders from.
type Snapshot struct {
	SessionID    string
	ExerciseID   string
	Status       Status
	TotalSeconds int
	Progress     domain.Progress
	ClockActive  bool
}

type Session struct {
	mu sync.Mutex

	id       string
	userID   string
	exercise domain.Exercise
	steps    []string

	clock     clock.Clock
	ticker    *clock.Source
	navigator Navigator
	notifier  notifier
	log       zerolog.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	stopWatch func() bool

	status     Status
	beforeExit Status
	elapsed    int
	closed     bool

	events []chan Event
}

// effects are performed after the session lock is released.
type effects struct {
	record   *domain.CompletionRecord
	outcome  *domain.Outcome
	teardown bool
}

// New starts a session for exercise. The session is torn down when ctx is
// cancelled, on completion, or on confirmed exit. A zero-duration exercise
// completes before New returns.
func New(ctx context.Context, exercise domain.Exercise, opts Options) *Session {
	if opts.ID == "" {
		opts.ID = uuid.New().String()
	}
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = defaultSaveTimeout
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	logger = logger.With().
		Str("session_id", opts.ID).
		Str("exercise_id", exercise.ID).
		Logger()

	s := &Session{
		id:        opts.ID,
		userID:    opts.UserID,
		exercise:  exercise,
		steps:     exercise.Steps(),
		clock:     opts.Clock,
		navigator: opts.Navigator,
		log:       logger,
		status:    StatusRunning,
		notifier: notifier{
			sink:    opts.Sink,
			timeout: opts.SaveTimeout,
			log:     logger,
		},
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.ticker = clock.NewSource(opts.Clock, opts.TickInterval, s.onTick)

	s.log.Info().
		Int("duration", exercise.DurationSeconds).
		Int("steps", len(s.steps)).
		Msg("session created")

	s.mu.Lock()
	s.stopWatch = context.AfterFunc(s.ctx, s.Close)
	var fx effects
	if exercise.DurationSeconds <= 0 {
		fx = s.completeLocked()
	} else {
		s.ticker.Start()
	}
	s.mu.Unlock()

	s.apply(fx)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Tick advances elapsed time by one second, exactly as a clock tick would.
// It only has an effect while running.
func (s *Session) Tick() {
	s.mu.Lock()
	fx := s.tickLocked()
	s.mu.Unlock()
	s.apply(fx)
}

// Pause freezes a running session.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.status != StatusRunning {
		return
	}
	s.ticker.Stop()
	s.setStatusLocked(StatusPaused)
}

// Resume continues a paused session.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.status != StatusPaused {
		return
	}
	s.ticker.Start()
	s.setStatusLocked(StatusRunning)
}

// Complete finishes a running session immediately, crediting full duration.
func (s *Session) Complete() {
	s.mu.Lock()
	if s.closed || s.status != StatusRunning {
		s.mu.Unlock()
		return
	}
	fx := s.completeLocked()
	s.mu.Unlock()
	s.apply(fx)
}

// Close releases the clock and closes observer channels. It is safe to call
// any number of times.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.ticker.Stop()
	s.stopWatch()
	s.cancel()
	s.closeEventsLocked()

	s.log.Debug().
		Str("status", s.status.String()).
		Int("elapsed", s.elapsed).
		Msg("session torn down")
}

func (s *Session) onTick(tick clock.Tick) {
	s.mu.Lock()
	if !s.ticker.Live(tick.Gen) {
		s.mu.Unlock()
		return
	}
	fx := s.tickLocked()
	s.mu.Unlock()
	s.apply(fx)
}

func (s *Session) tickLocked() effects {
	if s.closed || s.status != StatusRunning {
		return effects{}
	}
	s.elapsed++
	if s.elapsed >= s.exercise.DurationSeconds {
		return s.completeLocked()
	}
	s.emitLocked(EventProgress, nil)
	return effects{}
}

func (s *Session) completeLocked() effects {
	s.ticker.Stop()
	s.elapsed = max(s.exercise.DurationSeconds, 0)
	s.setStatusLocked(StatusCompleted)

	fx := effects{teardown: true}
	record, ok := s.notifier.claim(s.id, s.userID, s.exercise, s.clock.Now())
	if !ok {
		return fx
	}
	fx.record = &record
	fx.outcome = &domain.Outcome{
		Kind:         domain.OutcomeCompleted,
		SessionID:    s.id,
		ExerciseID:   s.exercise.ID,
		PointsEarned: record.PointsEarned,
	}
	return fx
}

func (s *Session) setStatusLocked(status Status) {
	if s.status == status {
		return
	}
	s.log.Debug().
		Str("from", s.status.String()).
		Str("to", status.String()).
		Int("elapsed", s.elapsed).
		Msg("status changed")
	s.status = status
	s.emitLocked(EventStateChange, nil)
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID:    s.id,
		ExerciseID:   s.exercise.ID,
		Status:       s.status,
		TotalSeconds: s.exercise.DurationSeconds,
		Progress:     domain.Project(s.elapsed, s.exercise.DurationSeconds, s.steps),
		ClockActive:  s.ticker.Active(),
	}
}

func (s *Session) apply(fx effects) {
	if fx.record != nil {
		s.notifier.deliver(s.ctx, *fx.record)
	}
	if fx.outcome != nil {
		s.mu.Lock()
		if !s.closed {
			s.emitLocked(EventLeave, fx.outcome)
		}
		s.mu.Unlock()
		if s.navigator != nil {
			s.navigator.Leave(*fx.outcome)
		}
	}
	if fx.teardown {
		s.Close()
	}
}
