// Package storetest is a conformance suite every store driver must pass.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/aussiebroadwan/jobtrackr/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Run executes the suite. newStore must return an empty, migrated store;
// it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	cases := []struct {
		name string
		fn   func(*testing.T, store.Store)
	}{
		{"Users", testUsers},
		{"JobsOwnerScoping", testJobsOwnerScoping},
		{"JobsRejectInvalidStatus", testJobsRejectInvalidStatus},
		{"ListJobs", testListJobs},
		{"UpdateJob", testUpdateJob},
		{"ExportJobsNewestFirst", testExportJobsNewestFirst},
		{"Stats", testStats},
		{"Maintenance", testMaintenance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newStore(t))
		})
	}
}

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedJob(t *testing.T, st store.Store, owner, company string, status domain.Status, created time.Time) domain.Job {
	t.Helper()
	j := domain.Job{
		ID:          idx.NewAt(created).String(),
		UserID:      owner,
		Company:     company,
		Role:        "Engineer",
		Location:    domain.DefaultLocation,
		Status:      status,
		DateApplied: created,
		Source:      domain.DefaultSource,
		LastUpdated: created,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, st.Jobs().CreateJob(context.Background(), j))
	return j
}

func testUsers(t *testing.T, st store.Store) {
	ctx := context.Background()

	u := seedUser(t, st, "ada@example.com")

	got, err := st.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Microsecond)

	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Test User", got.Name)

	_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func testJobsOwnerScoping(t *testing.T, st store.Store) {
	ctx := context.Background()

	alice := seedUser(t, st, "alice@example.com")
	bob := seedUser(t, st, "bob@example.com")
	j := seedJob(t, st, alice.ID, "Acme", domain.StatusApplied, time.Now().UTC())

	_, err := st.Jobs().GetJob(ctx, bob.ID, j.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	stolen := j
	stolen.UserID = bob.ID
	stolen.Company = "Hijacked"
	require.ErrorIs(t, st.Jobs().UpdateJob(ctx, stolen), store.ErrNotFound)
	require.ErrorIs(t, st.Jobs().DeleteJob(ctx, bob.ID, j.ID), store.ErrNotFound)

	got, err := st.Jobs().GetJob(ctx, alice.ID, j.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Company)

	require.NoError(t, st.Jobs().DeleteJob(ctx, alice.ID, j.ID))
	_, err = st.Jobs().GetJob(ctx, alice.ID, j.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testJobsRejectInvalidStatus(t *testing.T, st store.Store) {
	u := seedUser(t, st, "check@example.com")

	now := time.Now().UTC()
	err := st.Jobs().CreateJob(context.Background(), domain.Job{
		ID: idx.New().String(), UserID: u.ID, Company: "Acme", Role: "Dev",
		Location: "Remote", Status: "Ghosted", Source: "LinkedIn",
		LastUpdated: now, CreatedAt: now, UpdatedAt: now,
	})
	require.Error(t, err)
}

func testListJobs(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := seedUser(t, st, "list@example.com")
	other := seedUser(t, st, "other@example.com")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedJob(t, st, u.ID, "Acme", domain.StatusApplied, base)
	seedJob(t, st, u.ID, "acme labs", domain.StatusInterview, base.Add(time.Hour))
	seedJob(t, st, u.ID, "100% Remote Co", domain.StatusApplied, base.Add(2*time.Hour))
	seedJob(t, st, u.ID, "Globex", domain.StatusOffer, base.Add(3*time.Hour))
	seedJob(t, st, u.ID, "Ärzte GmbH", domain.StatusRejected, base.Add(30*time.Minute))
	seedJob(t, st, other.ID, "Acme", domain.StatusApplied, base)

	t.Run("company filter is case-insensitive substring", func(t *testing.T) {
		jobs, total, err := st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{
			Filter: domain.JobFilter{Company: "ACME"}, Limit: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, jobs, 2)
	})

	t.Run("company filter folds non-ASCII case", func(t *testing.T) {
		jobs, total, err := st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{
			Filter: domain.JobFilter{Company: "ärzte"}, Limit: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, "Ärzte GmbH", jobs[0].Company)

		_, total, err = st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{
			Filter: domain.JobFilter{Company: "ÄRZTE"}, Limit: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 1, total)
	})

	t.Run("company filter treats wildcards literally", func(t *testing.T) {
		_, total, err := st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{
			Filter: domain.JobFilter{Company: "%"}, Limit: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 1, total)

		_, total, err = st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{
			Filter: domain.JobFilter{Company: "_"}, Limit: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 0, total)
	})

	t.Run("status filter", func(t *testing.T) {
		jobs, total, err := st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{
			Filter: domain.JobFilter{Status: domain.StatusApplied}, Limit: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		for _, j := range jobs {
			require.Equal(t, domain.StatusApplied, j.Status)
			require.Equal(t, u.ID, j.UserID)
		}
	})

	t.Run("sorts", func(t *testing.T) {
		jobs, _, err := st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{Sort: domain.SortLatest, Limit: 10})
		require.NoError(t, err)
		require.Equal(t, "Globex", jobs[0].Company)

		jobs, _, err = st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{Sort: domain.SortOldest, Limit: 10})
		require.NoError(t, err)
		require.Equal(t, "Acme", jobs[0].Company)

		jobs, _, err = st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{Sort: domain.SortCompany, Limit: 10})
		require.NoError(t, err)
		// Lexicographic and case-sensitive, as stored.
		require.Equal(t, []string{"100% Remote Co", "Acme", "Globex", "acme labs", "Ärzte GmbH"},
			[]string{jobs[0].Company, jobs[1].Company, jobs[2].Company, jobs[3].Company, jobs[4].Company})
	})

	t.Run("pagination", func(t *testing.T) {
		jobs, total, err := st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{Limit: 3, Offset: 3})
		require.NoError(t, err)
		require.Equal(t, 5, total)
		require.Len(t, jobs, 2)

		jobs, total, err = st.Jobs().ListJobs(ctx, u.ID, domain.JobQuery{Limit: 3, Offset: 30})
		require.NoError(t, err)
		require.Equal(t, 5, total)
		require.Empty(t, jobs)
	})
}

func testUpdateJob(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := seedUser(t, st, "upd@example.com")
	j := seedJob(t, st, u.ID, "Acme", domain.StatusApplied, time.Now().UTC().Add(-time.Hour))

	later := time.Now().UTC()
	j.Status = domain.StatusInterview
	j.Notes = "phone screen"
	j.LastUpdated = later
	j.UpdatedAt = later
	require.NoError(t, st.Jobs().UpdateJob(ctx, j))

	got, err := st.Jobs().GetJob(ctx, u.ID, j.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInterview, got.Status)
	require.Equal(t, "phone screen", got.Notes)
	require.WithinDuration(t, later, got.LastUpdated, time.Microsecond)
}

func testExportJobsNewestFirst(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := seedUser(t, st, "exp@example.com")

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	seedJob(t, st, u.ID, "Old", domain.StatusApplied, base)
	seedJob(t, st, u.ID, "New", domain.StatusApplied, base.Add(time.Minute))

	jobs, err := st.Jobs().ExportJobs(ctx, u.ID, domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, "New", jobs[0].Company)

	jobs, err = st.Jobs().ExportJobs(ctx, u.ID, domain.JobFilter{Status: domain.StatusHired})
	require.NoError(t, err)
	require.Empty(t, jobs)
}

func testStats(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := seedUser(t, st, "stats@example.com")

	// Eight distinct months, two jobs in the latest one.
	for m := 1; m <= 8; m++ {
		seedJob(t, st, u.ID, "Acme", domain.StatusApplied, time.Date(2024, time.Month(m), 10, 0, 0, 0, 0, time.UTC))
	}
	seedJob(t, st, u.ID, "Globex", domain.StatusOffer, time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC))
	seedJob(t, st, u.ID, "Initech", domain.StatusOffer, time.Date(2024, 8, 21, 0, 0, 0, 0, time.UTC))

	err := st.WithReadTx(ctx, func(tx store.Tx) error {
		byStatus, err := tx.Stats().CountByStatus(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.StatusCount{
			{Status: domain.StatusApplied, Count: 8},
			{Status: domain.StatusOffer, Count: 2},
		}, byStatus)

		months, err := tx.Stats().MonthlyCounts(ctx, u.ID, 6)
		require.NoError(t, err)
		require.Len(t, months, 6)
		require.Equal(t, domain.MonthCount{Year: 2024, Month: 3, Count: 1}, months[0])
		require.Equal(t, domain.MonthCount{Year: 2024, Month: 8, Count: 3}, months[5])

		top, err := tx.Stats().TopCompanies(ctx, u.ID, 5)
		require.NoError(t, err)
		require.Equal(t, []domain.CompanyCount{
			{Company: "Acme", Count: 8},
			{Company: "Globex", Count: 1},
			{Company: "Initech", Count: 1},
		}, top)
		return nil
	})
	require.NoError(t, err)
}

func testMaintenance(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := seedUser(t, st, "m@example.com")
	seedJob(t, st, u.ID, "Acme", domain.StatusApplied, time.Now().UTC())

	require.NoError(t, st.Maintenance().Optimize(ctx))

	counts, err := st.Maintenance().RowCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, store.RowCounts{Users: 1, Jobs: 1}, counts)
}
