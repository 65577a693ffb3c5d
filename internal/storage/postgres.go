package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/hperssn/drill/internal/domain"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(connStr string) (*PostgresRepository, error) {
	db, err := sql.Open(DriverPostgres, connStr)
	if err != nil {
		return nil, err
	}

	repo := &PostgresRepository{db: db}
	if err := repo.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create postgres schema: %w", err)
	}

	return repo, nil
}

func (r *PostgresRepository) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS completions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		points_earned INTEGER NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_completions_user ON completions(user_id);
	CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

func (r *PostgresRepository) SaveCompletion(ctx context.Context, record domain.CompletionRecord) error {
	query := `
		INSERT INTO completions (id, session_id, user_id, exercise_id, points_earned, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.SessionID,
		record.UserID,
		record.ExerciseID,
		record.PointsEarned,
		record.CompletedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: session %s", ErrDuplicateRecord, record.SessionID)
	}
	return err
}

func (r *PostgresRepository) CompletionsByUser(ctx context.Context, userID string) ([]domain.CompletionRecord, error) {
	query := `
		SELECT id, session_id, user_id, exercise_id, points_earned, completed_at
		FROM completions
		WHERE user_id = $1
		ORDER BY completed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (r *PostgresRepository) CompletionsSince(ctx context.Context, userID string, since time.Time) ([]domain.CompletionRecord, error) {
	query := `
		SELECT id, session_id, user_id, exercise_id, points_earned, completed_at
		FROM completions
		WHERE user_id = $1 AND completed_at >= $2
		ORDER BY completed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (r *PostgresRepository) Stats(ctx context.Context, userID string, dayStart time.Time) (*Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(points_earned), 0) AS points,
			COUNT(DISTINCT exercise_id) AS exercises,
			COUNT(*) FILTER (WHERE completed_at >= $2) AS today,
			COALESCE(SUM(points_earned) FILTER (WHERE completed_at >= $2), 0) AS points_today
		FROM completions
		WHERE user_id = $1
	`

	var stats Stats
	err := r.db.QueryRowContext(ctx, query, userID, dayStart).Scan(
		&stats.TotalCompletions,
		&stats.TotalPoints,
		&stats.DistinctExercises,
		&stats.CompletionsToday,
		&stats.PointsToday,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
