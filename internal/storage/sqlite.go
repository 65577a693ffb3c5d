package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/hperssn/drill/internal/domain"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open(DriverSQLite, dbPath)
	if err != nil {
		return nil, err
	}

	repo := &SQLiteRepository{db: db}
	if err := repo.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return repo, nil
}

func (r *SQLiteRepository) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS completions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		points_earned INTEGER NOT NULL,
		completed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_completions_user ON completions(user_id);
	CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

func (r *SQLiteRepository) SaveCompletion(ctx context.Context, record domain.CompletionRecord) error {
	query := `
		INSERT INTO completions (id, session_id, user_id, exercise_id, points_earned, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.SessionID,
		record.UserID,
		record.ExerciseID,
		record.PointsEarned,
		record.CompletedAt.UTC(),
	)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: session %s", ErrDuplicateRecord, record.SessionID)
	}
	return err
}

func (r *SQLiteRepository) CompletionsByUser(ctx context.Context, userID string) ([]domain.CompletionRecord, error) {
	query := `
		SELECT id, session_id, user_id, exercise_id, points_earned, completed_at
		FROM completions
		WHERE user_id = ?
		ORDER BY completed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (r *SQLiteRepository) CompletionsSince(ctx context.Context, userID string, since time.Time) ([]domain.CompletionRecord, error) {
	query := `
		SELECT id, session_id, user_id, exercise_id, points_earned, completed_at
		FROM completions
		WHERE user_id = ? AND completed_at >= ?
		ORDER BY completed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (r *SQLiteRepository) Stats(ctx context.Context, userID string, dayStart time.Time) (*Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(points_earned), 0) AS points,
			COUNT(DISTINCT exercise_id) AS exercises,
			COALESCE(SUM(CASE WHEN completed_at >= ? THEN 1 ELSE 0 END), 0) AS today,
			COALESCE(SUM(CASE WHEN completed_at >= ? THEN points_earned ELSE 0 END), 0) AS points_today
		FROM completions
		WHERE user_id = ?
	`

	var stats Stats
	day := dayStart.UTC()
	err := r.db.QueryRowContext(ctx, query, day, day, userID).Scan(
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

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanCompletions(rows *sql.Rows) ([]domain.CompletionRecord, error) {
	var records []domain.CompletionRecord

	for rows.Next() {
		var record domain.CompletionRecord

		err := rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.UserID,
			&record.ExerciseID,
			&record.PointsEarned,
			&record.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		record.CompletedAt = record.CompletedAt.UTC()

		records = append(records, record)
	}

	return records, rows.Err()
}
