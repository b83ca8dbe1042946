package service

import (
	"context"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
)

const (
	TrendMonths     = 6
	TopCompanyCount = 5
)

type StatsService struct {
	Store store.Store
}

// Stats reads every facet inside one read transaction.
func (s *StatsService) Stats(ctx context.Context, ownerID string) (domain.Stats, error) {
	var out domain.Stats
	err := s.Store.WithReadTx(ctx, func(tx store.Tx) error {
		byStatus, err := tx.Stats().CountByStatus(ctx, ownerID)
		if err != nil {
			return err
		}
		trend, err := tx.Stats().MonthlyCounts(ctx, ownerID, TrendMonths)
		if err != nil {
			return err
		}
		top, err := tx.Stats().TopCompanies(ctx, ownerID, TopCompanyCount)
		if err != nil {
			return err
		}

		out = domain.Stats{
			ByStatus:     byStatus,
			MonthlyTrend: trend,
			TopCompanies: top,
		}
		for _, c := range byStatus {
			out.Total += c.Count
		}
		return nil
	})
	if err != nil {
		return domain.Stats{}, storeError("Failed to fetch stats", err)
	}
	return out, nil
}
