package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hperssn/drill/internal/domain"
)

var (
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrDuplicateRecord = errors.New("completion record already stored")
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Repository stores completion history. It satisfies runner.CompletionSink.
type Repository interface {
	SaveCompletion(ctx context.Context, record domain.CompletionRecord) error

	CompletionsByUser(ctx context.Context, userID string) ([]domain.CompletionRecord, error)

	CompletionsSince(ctx context.Context, userID string, since time.Time) ([]domain.CompletionRecord, error)

	Stats(ctx context.Context, userID string, dayStart time.Time) (*Stats, error)

	Close() error
}

// Open returns the repository for driver. dsn is a file path for sqlite3 and
// a connection string for postgres; memory ignores it.
func Open(driver, dsn string) (Repository, error) {
	switch driver {
	case DriverSQLite:
		return NewSQLiteRepository(dsn)
	case DriverPostgres:
		return NewPostgresRepository(dsn)
	case DriverMemory:
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
