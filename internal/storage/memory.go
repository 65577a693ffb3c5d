package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hperssn/drill/internal/domain"
)

// MemoryRepository keeps completions in process memory.
type MemoryRepository struct {
	mu       sync.Mutex
	records  []domain.CompletionRecord
	sessions map[string]struct{}
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]struct{})}
}

func (r *MemoryRepository) SaveCompletion(_ context.Context, record domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.sessions[record.SessionID]; dup {
		return fmt.Errorf("%w: session %s", ErrDuplicateRecord, record.SessionID)
	}
	r.sessions[record.SessionID] = struct{}{}
	r.records = append(r.records, record)
	return nil
}

func (r *MemoryRepository) CompletionsByUser(ctx context.Context, userID string) ([]domain.CompletionRecord, error) {
	return r.CompletionsSince(ctx, userID, time.Time{})
}

func (r *MemoryRepository) CompletionsSince(_ context.Context, userID string, since time.Time) ([]domain.CompletionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.CompletionRecord
	for _, rec := range r.records {
		if rec.UserID == userID && !rec.CompletedAt.Before(since) {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CompletionRecord) int {
		return b.CompletedAt.Compare(a.CompletedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Stats(ctx context.Context, userID string, dayStart time.Time) (*Stats, error) {
	records, err := r.CompletionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(records, dayStart), nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
