package storage

import (
	"time"

	"github.com/hperssn/drill/internal/domain"
)

// Stats aggregates a player's completion history.
type Stats struct {
	TotalCompletions  int `json:"totalCompletions"`
	TotalPoints       int `json:"totalPoints"`
	DistinctExercises int `json:"distinctExercises"`
	CompletionsToday  int `json:"completionsToday"`
	PointsToday       int `json:"pointsToday"`
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func summarize(records []domain.CompletionRecord, dayStart time.Time) *Stats {
	stats := &Stats{}
	seen := make(map[string]struct{})
	for _, r := range records {
		stats.TotalCompletions++
		stats.TotalPoints += r.PointsEarned
		seen[r.ExerciseID] = struct{}{}
		if !r.CompletedAt.Before(dayStart) {
			stats.CompletionsToday++
			stats.PointsToday += r.PointsEarned
		}
	}
	stats.DistinctExercises = len(seen)
	return stats
}
