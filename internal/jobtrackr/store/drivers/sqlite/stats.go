package sqlite

import (
	"context"
	"fmt"
	"slices"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
)

type statsRepo struct {
	db dbtx
}

func (r *statsRepo) CountByStatus(ctx context.Context, ownerID string) ([]domain.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) AS n
		FROM jobs
		WHERE user_id = ?
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

// MonthlyCounts groups on the "YYYY-MM" prefix of created_at, which is UTC.
func (r *statsRepo) MonthlyCounts(ctx context.Context, ownerID string, n int) ([]domain.MonthCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT substr(created_at, 1, 7) AS ym, COUNT(*)
		FROM jobs
		WHERE user_id = ?
		GROUP BY ym
		ORDER BY ym DESC
		LIMIT ?`, ownerID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MonthCount{}
	for rows.Next() {
		var (
			ym string
			mc domain.MonthCount
		)
		if err := rows.Scan(&ym, &mc.Count); err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(ym, "%d-%d", &mc.Year, &mc.Month); err != nil {
			return nil, fmt.Errorf("parse month %q: %w", ym, err)
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
	rows, err := r.db.QueryContext(ctx, `
		SELECT company, COUNT(*) AS n
		FROM jobs
		WHERE user_id = ?
		GROUP BY company
		ORDER BY n DESC, company ASC
		LIMIT ?`, ownerID, n)
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
