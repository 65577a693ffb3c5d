package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompletionRecord is the immutable fact that a session finished.
type CompletionRecord struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	UserID       string    `json:"userId"`
	ExerciseID   string    `json:"exerciseId"`
	PointsEarned int       `json:"pointsEarned"`
	CompletedAt  time.Time `json:"completedAt"`
}

func NewCompletionRecord(sessionID, userID, exerciseID string, points int, at time.Time) CompletionRecord {
	return CompletionRecord{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		UserID:       userID,
		ExerciseID:   exerciseID,
		PointsEarned: points,
		CompletedAt:  at.UTC(),
	}
}

type OutcomeKind string

const (
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeCompleted OutcomeKind = "completed"
)

// Outcome is the payload of the leave-session signal.
type Outcome struct {
	Kind         OutcomeKind `json:"kind"`
	SessionID    string      `json:"sessionId"`
	ExerciseID   string      `json:"exerciseId"`
	PointsEarned int         `json:"pointsEarned"`
}
