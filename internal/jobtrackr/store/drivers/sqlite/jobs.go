package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
)

type jobsRepo struct {
	db dbtx
}

const jobColumns = `id, user_id, company, role, location, status, date_applied,
	next_step, notes, source, last_updated, created_at, updated_at`

func (r *jobsRepo) CreateJob(ctx context.Context, j domain.Job) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.UserID, j.Company, j.Role, j.Location, string(j.Status), formatOptionalTime(j.DateApplied),
		j.NextStep, j.Notes, j.Source,
		store.FormatTime(j.LastUpdated), store.FormatTime(j.CreatedAt), store.FormatTime(j.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *jobsRepo) GetJob(ctx context.Context, ownerID, jobID string) (domain.Job, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ? AND user_id = ?`, jobID, ownerID)
	return scanJob(row)
}

func (r *jobsRepo) ListJobs(ctx context.Context, ownerID string, q domain.JobQuery) ([]domain.Job, int, error) {
	where, args := jobWhere(ownerID, q.Filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 || q.Offset >= total {
		return []domain.Job{}, total, nil
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + where + ` ORDER BY ` + jobOrder(q.Sort) + ` LIMIT ? OFFSET ?`
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
	res, err := r.db.ExecContext(ctx, `
		UPDATE jobs SET
			company = ?, role = ?, location = ?, status = ?, date_applied = ?,
			next_step = ?, notes = ?, source = ?, last_updated = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		j.Company, j.Role, j.Location, string(j.Status), formatOptionalTime(j.DateApplied),
		j.NextStep, j.Notes, j.Source, store.FormatTime(j.LastUpdated), store.FormatTime(j.UpdatedAt),
		j.ID, j.UserID,
	)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *jobsRepo) DeleteJob(ctx context.Context, ownerID, jobID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ? AND user_id = ?`, jobID, ownerID)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *jobsRepo) query(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

// jobWhere builds the owner-scoped WHERE clause shared by list, count and export.
func jobWhere(ownerID string, f domain.JobFilter) (string, []any) {
	clauses := []string{"user_id = ?"}
	args := []any{ownerID}

	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Company != "" {
		clauses = append(clauses, foldFunc+`(company) LIKE '%' || ? || '%' ESCAPE '\'`)
		args = append(args, strings.ToLower(domain.EscapeLike(f.Company)))
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
		return "company ASC, id ASC"
	default:
		// IDs are ULIDs, so this is insertion order.
		return "id ASC"
	}
}

func scanJob(row rowScanner) (domain.Job, error) {
	var (
		j                                 domain.Job
		status, dateApplied               string
		lastUpdated, createdAt, updatedAt string
	)
	err := row.Scan(
		&j.ID, &j.UserID, &j.Company, &j.Role, &j.Location, &status, &dateApplied,
		&j.NextStep, &j.Notes, &j.Source, &lastUpdated, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Job{}, mapNotFound(err)
	}
	j.Status = domain.Status(status)

	if j.DateApplied, err = store.ParseTime(dateApplied); err != nil {
		return domain.Job{}, err
	}
	if j.LastUpdated, err = store.ParseTime(lastUpdated); err != nil {
		return domain.Job{}, err
	}
	if j.CreatedAt, err = store.ParseTime(createdAt); err != nil {
		return domain.Job{}, err
	}
	if j.UpdatedAt, err = store.ParseTime(updatedAt); err != nil {
		return domain.Job{}, err
	}
	return j, nil
}

// formatOptionalTime stores an unset time as ''.
func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return store.FormatTime(t)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
