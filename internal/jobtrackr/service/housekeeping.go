package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
)

// HousekeepingService periodically refreshes planner statistics and logs
// table sizes so growth is visible in the logs.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Timeout bounds a single pass.
	Timeout time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		Timeout:  time.Minute,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. It is non-blocking; call Stop to shut
// it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker and waits for an in-progress pass to finish.
// Calling it more than once is safe.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once immediately on startup
	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single maintenance pass. Steps are independent; a
// failure in one is logged and the next still runs.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	m := s.Store.Maintenance()

	if err := m.Optimize(ctx); err != nil {
		s.Logger.Error("failed to optimize database", "error", err)
	} else {
		s.Logger.Debug("database statistics refreshed")
	}

	counts, err := m.RowCounts(ctx)
	if err != nil {
		s.Logger.Error("failed to count rows", "error", err)
		return
	}

	s.Logger.Info("housekeeping completed",
		slog.Int64("users", counts.Users),
		slog.Int64("jobs", counts.Jobs),
		slog.Duration("duration", time.Since(start)),
	)
}
