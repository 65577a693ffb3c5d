package runner

import "github.com/hperssn/drill/internal/domain"

// RequestExit opens the exit confirmation. The clock stops while it is open
// whether the session was running or paused.
func (s *Session) RequestExit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || (s.status != StatusRunning && s.status != StatusPaused) {
		return
	}
	s.beforeExit = s.status
	s.ticker.Stop()
	s.setStatusLocked(StatusExitRequested)
}

// CancelExit closes the confirmation and restores the prior status. The clock
// only restarts if the session was running; a user pause stays paused.
func (s *Session) CancelExit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.status != StatusExitRequested {
		return
	}
	prior := s.beforeExit
	s.beforeExit = ""
	if prior == StatusRunning {
		s.ticker.Start()
	}
	s.setStatusLocked(prior)
}

// ConfirmExit abandons the session without recording a completion.
func (s *Session) ConfirmExit() {
	s.mu.Lock()
	if s.closed || s.status != StatusExitRequested {
		s.mu.Unlock()
		return
	}
	s.setStatusLocked(StatusExited)
	s.log.Info().Int("elapsed", s.elapsed).Msg("session abandoned")
	fx := effects{
		outcome: &domain.Outcome{
			Kind:       domain.OutcomeCancelled,
			SessionID:  s.id,
			ExerciseID: s.exercise.ID,
		},
		teardown: true,
	}
	s.mu.Unlock()
	s.apply(fx)
}
