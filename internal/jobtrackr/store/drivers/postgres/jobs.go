package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/jackc/pgx/v5"
)

type jobsRepo struct {
	db dbtx
}

const jobColumns = `id, user_id, company, role, location, status, date_applied,
	next_step, notes, source, last_updated, created_at, updated_at`

func (r *jobsRepo) CreateJob(ctx context.Context, j domain.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.UserID, j.Company, j.Role, j.Location, string(j.Status), optionalTime(j.DateApplied),
		j.NextStep, j.Notes, j.Source, j.LastUpdated, j.CreatedAt, j.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *jobsRepo) GetJob(ctx context.Context, ownerID, jobID string) (domain.Job, error) {
	return scanJob(r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND user_id = $2`, jobID, ownerID))
}

func (r *jobsRepo) ListJobs(ctx context.Context, ownerID string, q domain.JobQuery) ([]domain.Job, int, error) {
	where, args := jobWhere(ownerID, q.Filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 || q.Offset >= total {
		return []domain.Job{}, total, nil
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		jobColumns, where, jobOrder(q.Sort), n+1, n+2)
	jobs, err := r.query(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobsRepo) ExportJobs(ctx context.Context, ownerID string, f domain.JobFilter) ([]domain.Job, error) {
	where, args := jobWhere(ownerID, f)
	return r.query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE `+where+` ORDER BY `+jobOrder(domain.SortLatest), args...)
}

func (r *jobsRepo) UpdateJob(ctx context.Context, j domain.Job) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs SET
			company = $1, role = $2, location = $3, status = $4, date_applied = $5,
			next_step = $6, notes = $7, source = $8, last_updated = $9, updated_at = $10
		WHERE id = $11 AND user_id = $12`,
		j.Company, j.Role, j.Location, string(j.Status), optionalTime(j.DateApplied),
		j.NextStep, j.Notes, j.Source, j.LastUpdated, j.UpdatedAt,
		j.ID, j.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *jobsRepo) DeleteJob(ctx context.Context, ownerID, jobID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, jobID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *jobsRepo) query(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func jobWhere(ownerID string, f domain.JobFilter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{ownerID}

	if f.Status != "" {
		args = append(args, string(f.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Company != "" {
		args = append(args, domain.EscapeLike(f.Company))
		clauses = append(clauses, fmt.Sprintf(`company ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

func jobOrder(s domain.JobSort) string {
	switch s {
	case domain.SortLatest:
		return "created_at DESC, id DESC"
	case domain.SortOldest:
		return "created_at ASC, id ASC"
	case domain.SortCompany:
		// Byte order, independent of the database locale.
		return `company COLLATE "C" ASC, id ASC`
	default:
		return "id ASC"
	}
}

func scanJob(row pgx.Row) (domain.Job, error) {
	var (
		j           domain.Job
		status      string
		dateApplied *time.Time
	)
	err := row.Scan(
		&j.ID, &j.UserID, &j.Company, &j.Role, &j.Location, &status, &dateApplied,
		&j.NextStep, &j.Notes, &j.Source, &j.LastUpdated, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return domain.Job{}, mapNotFound(err)
	}

	j.Status = domain.Status(status)
	if dateApplied != nil {
		j.DateApplied = dateApplied.UTC()
	}
	j.LastUpdated = j.LastUpdated.UTC()
	j.CreatedAt = j.CreatedAt.UTC()
	j.UpdatedAt = j.UpdatedAt.UTC()
	return j, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
