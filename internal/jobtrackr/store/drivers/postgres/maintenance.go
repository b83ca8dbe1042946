package postgres

import (
	"context"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
)

type maintenanceRepo struct {
	db dbtx
}

func (r *maintenanceRepo) Optimize(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `ANALYZE users, jobs`)
	return err
}

func (r *maintenanceRepo) RowCounts(ctx context.Context) (store.RowCounts, error) {
	var c store.RowCounts
	err := r.db.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM jobs)`,
	).Scan(&c.Users, &c.Jobs)
	return c, err
}
