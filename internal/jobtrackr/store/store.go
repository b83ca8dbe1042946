package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a Tx-scoped store hands out
// the same repos bound to the transaction, which stops anyone from starting a
// transaction within a transaction.
type Store interface {
	Users() Users
	Jobs() Jobs
	Stats() Stats
	Maintenance() Maintenance

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// WithReadTx runs fn against a single consistent snapshot. It is used by
	// multi-query reads such as the stats facets.
	WithReadTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up a user by normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

// Every Jobs method is scoped by owner. A job owned by someone else behaves
// exactly as if it did not exist.
type Jobs interface {
	CreateJob(ctx context.Context, j domain.Job) error

	GetJob(ctx context.Context, ownerID, jobID string) (domain.Job, error)

	// ListJobs returns one page of matching jobs and the total match count.
	ListJobs(ctx context.Context, ownerID string, q domain.JobQuery) ([]domain.Job, int, error)

	// ExportJobs returns every matching job, newest first.
	ExportJobs(ctx context.Context, ownerID string, f domain.JobFilter) ([]domain.Job, error)

	// UpdateJob writes the full mutable state of j (matched on j.ID and
	// j.UserID) and returns ErrNotFound if no row matched.
	UpdateJob(ctx context.Context, j domain.Job) error

	DeleteJob(ctx context.Context, ownerID, jobID string) error
}

type Stats interface {
	// CountByStatus returns per-status counts, highest first, ties by status.
	CountByStatus(ctx context.Context, ownerID string) ([]domain.StatusCount, error)

	// MonthlyCounts returns the most recent n months that have jobs, oldest first.
	MonthlyCounts(ctx context.Context, ownerID string, n int) ([]domain.MonthCount, error)

	// TopCompanies returns the n companies with most jobs, ties by name.
	TopCompanies(ctx context.Context, ownerID string, n int) ([]domain.CompanyCount, error)
}

// RowCounts is a snapshot of table sizes logged by housekeeping.
type RowCounts struct {
	Users int64
	Jobs  int64
}

type Maintenance interface {
	// Optimize refreshes planner statistics.
	Optimize(ctx context.Context) error

	RowCounts(ctx context.Context) (RowCounts, error)
}

// TimeLayout is the fixed width UTC layout drivers without a native timestamp
// type store times in. Fixed width keeps lexical order chronological.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a TimeLayout string. Empty input yields the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(TimeLayout, s)
}
