package postgres

import (
	"context"
	"slices"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
)

type statsRepo struct {
	db dbtx
}

func (r *statsRepo) CountByStatus(ctx context.Context, ownerID string) ([]domain.StatusCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)::int AS n
		FROM jobs
		WHERE user_id = $1
		GROUP BY status
		ORDER BY n DESC, status ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.StatusCount{}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out = append(out, domain.StatusCount{Status: domain.Status(status), Count: n})
	}
	return out, rows.Err()
}

func (r *statsRepo) MonthlyCounts(ctx context.Context, ownerID string, n int) ([]domain.MonthCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS y,
			EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS m,
			COUNT(*)::int
		FROM jobs
		WHERE user_id = $1
		GROUP BY y, m
		ORDER BY y DESC, m DESC
		LIMIT $2`, ownerID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MonthCount{}
	for rows.Next() {
		var mc domain.MonthCount
		if err := rows.Scan(&mc.Year, &mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		out = append(out, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(out)
	return out, nil
}

func (r *statsRepo) TopCompanies(ctx context.Context, ownerID string, n int) ([]domain.CompanyCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT company, COUNT(*)::int AS n
		FROM jobs
		WHERE user_id = $1
		GROUP BY company
		ORDER BY n DESC, company COLLATE "C" ASC
		LIMIT $2`, ownerID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CompanyCount{}
	for rows.Next() {
		var cc domain.CompanyCount
		if err := rows.Scan(&cc.Company, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
