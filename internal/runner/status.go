package runner

// Status is the run state of a session.
type Status string

const (
	StatusRunning       Status = "running"
	StatusPaused        Status = "paused"
	StatusCompleted     Status = "completed"
	StatusExitRequested Status = "exit_requested"
	StatusExited        Status = "exited"
)

// Terminal reports whether no further transition can leave s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusExited
}

func (s Status) String() string {
	return string(s)
}
