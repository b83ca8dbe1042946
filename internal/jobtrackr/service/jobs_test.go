package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateAppliesDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "dana@example.com")

	before := time.Now().UTC()
	created, err := f.jobs.Create(ctx, owner, domain.JobPatch{
		Company: ptr("Initech"),
		Role:    ptr("Developer"),
	})
	require.NoError(t, err)

	got, err := f.jobs.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Remote", got.Location)
	require.Equal(t, domain.StatusApplied, got.Status)
	require.Equal(t, "LinkedIn", got.Source)
	require.Equal(t, owner, got.UserID)
	require.WithinDuration(t, before, got.DateApplied, 5*time.Second)
	require.WithinDuration(t, got.CreatedAt, got.DateApplied, time.Millisecond)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "erin@example.com")

	_, err := f.jobs.Create(ctx, owner, domain.JobPatch{Role: ptr("Dev")})
	requireKind(t, err, KindValidation)

	_, err = f.jobs.Create(ctx, owner, domain.JobPatch{Company: ptr("  "), Role: ptr("Dev")})
	requireKind(t, err, KindValidation)

	_, err = f.jobs.Create(ctx, owner, domain.JobPatch{Company: ptr("X"), Role: ptr("Dev"), Status: ptr(domain.Status("Ghosted"))})
	requireKind(t, err, KindValidation)
}

func TestListStatusFilterIsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice@example.com")
	mallory := f.register(t, "mallory@example.com")

	now := time.Now().UTC()
	for i, st := range domain.Statuses {
		f.createAt(t, alice, fmt.Sprintf("A%d", i), st, now)
		f.createAt(t, mallory, fmt.Sprintf("M%d", i), st, now)
	}
	f.createAt(t, alice, "Extra", domain.StatusInterview, now)

	for _, st := range domain.Statuses {
		list, err := f.jobs.List(ctx, alice, ListJobsInput{Status: st.String(), Limit: "100"})
		require.NoError(t, err)
		require.NotEmpty(t, list.Jobs)
		for _, j := range list.Jobs {
			require.Equal(t, st, j.Status)
			require.Equal(t, alice, j.UserID, "never another owner's job")
		}
	}

	list, err := f.jobs.List(ctx, alice, ListJobsInput{Status: "Interview"})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)

	_, err = f.jobs.List(ctx, alice, ListJobsInput{Status: "Ghosted"})
	requireKind(t, err, KindValidation)
}

func TestListCompanyFilterIsLiteral(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "frank@example.com")

	now := time.Now().UTC()
	f.createAt(t, owner, "100% Remote Co", domain.StatusApplied, now)
	f.createAt(t, owner, "1000 Remote Co", domain.StatusApplied, now)
	f.createAt(t, owner, "Acme", domain.StatusApplied, now)

	list, err := f.jobs.List(ctx, owner, ListJobsInput{Company: "0%"})
	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
	require.Equal(t, "100% Remote Co", list.Jobs[0].Company)

	list, err = f.jobs.List(ctx, owner, ListJobsInput{Company: "acME"})
	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
}

func TestListPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "grace@example.com")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	const total = 23
	for i := range total {
		f.createAt(t, owner, fmt.Sprintf("Company %02d", i), domain.StatusApplied, base.Add(time.Duration(i)*time.Hour))
	}

	for _, limit := range []int{1, 3, 5, 10, 23, 50} {
		wantPages := (total + limit - 1) / limit
		seen := 0
		for page := 1; page <= wantPages+1; page++ {
			list, err := f.jobs.List(ctx, owner, ListJobsInput{
				Sort:  "oldest",
				Page:  fmt.Sprint(page),
				Limit: fmt.Sprint(limit),
			})
			require.NoError(t, err)
			require.Equal(t, total, list.Total)
			require.Equal(t, wantPages, list.TotalPages, "limit %d", limit)
			require.Equal(t, page, list.Page)
			require.LessOrEqual(t, len(list.Jobs), limit)
			if page > wantPages {
				require.Empty(t, list.Jobs, "page past the end")
			}
			seen += len(list.Jobs)
		}
		require.Equal(t, total, seen)
	}
}

func TestListPagingDefaultsAndBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "heidi@example.com")

	now := time.Now().UTC()
	for i := range 12 {
		f.createAt(t, owner, fmt.Sprintf("C%d", i), domain.StatusApplied, now)
	}

	list, err := f.jobs.List(ctx, owner, ListJobsInput{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Page)
	require.Len(t, list.Jobs, DefaultLimit)
	require.Equal(t, 2, list.TotalPages)

	list, err = f.jobs.List(ctx, owner, ListJobsInput{Limit: "1000"})
	require.NoError(t, err)
	require.Len(t, list.Jobs, 12)
	require.Equal(t, 1, list.TotalPages, "limit is capped at MaxLimit")

	for _, in := range []ListJobsInput{{Page: "0"}, {Page: "-1"}, {Page: "two"}, {Limit: "0"}, {Limit: "1.5"}, {Page: "99999999999"}} {
		_, err := f.jobs.List(ctx, owner, in)
		requireKind(t, err, KindValidation)
	}
}

func TestListSortOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "ivan@example.com")

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f.createAt(t, owner, "beta", domain.StatusApplied, base)
	f.createAt(t, owner, "Alpha", domain.StatusApplied, base.Add(time.Hour))
	f.createAt(t, owner, "gamma", domain.StatusApplied, base.Add(2*time.Hour))

	companies := func(sort string) []string {
		list, err := f.jobs.List(ctx, owner, ListJobsInput{Sort: sort})
		require.NoError(t, err)
		out := make([]string, len(list.Jobs))
		for i, j := range list.Jobs {
			out[i] = j.Company
		}
		return out
	}

	require.Equal(t, []string{"gamma", "Alpha", "beta"}, companies("latest"))
	require.Equal(t, []string{"beta", "Alpha", "gamma"}, companies("oldest"))
	require.Equal(t, []string{"Alpha", "beta", "gamma"}, companies("company"))
	require.Equal(t, []string{"beta", "Alpha", "gamma"}, companies("bogus"), "unknown sort is natural order")
}

func TestUpdatePatchesOnlySuppliedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "judy@example.com")

	created := f.createAt(t, owner, "Hooli", domain.StatusApplied, time.Now().UTC().Add(-time.Hour))

	updated, err := f.jobs.Update(ctx, owner, created.ID, domain.JobPatch{
		Status: ptr(domain.StatusInterview),
		Notes:  ptr("phone screen booked"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInterview, updated.Status)
	require.Equal(t, "phone screen booked", updated.Notes)
	require.Equal(t, "Hooli", updated.Company)
	require.Equal(t, created.Role, updated.Role)
	require.True(t, updated.LastUpdated.After(created.LastUpdated))

	got, err := f.jobs.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInterview, got.Status)
	require.Equal(t, created.UserID, got.UserID)
	require.WithinDuration(t, updated.LastUpdated, got.LastUpdated, time.Millisecond)

	_, err = f.jobs.Update(ctx, owner, created.ID, domain.JobPatch{Status: ptr(domain.Status("Ghosted"))})
	requireKind(t, err, KindValidation)
	_, err = f.jobs.Update(ctx, owner, created.ID, domain.JobPatch{Company: ptr("")})
	requireKind(t, err, KindValidation)
}

func TestForeignJobsLookMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "kim@example.com")
	intruder := f.register(t, "leo@example.com")

	job := f.createAt(t, owner, "Umbrella", domain.StatusApplied, time.Now().UTC())

	_, err := f.jobs.Get(ctx, intruder, job.ID)
	require.ErrorIs(t, err, ErrJobNotFound)

	_, err = f.jobs.Update(ctx, intruder, job.ID, domain.JobPatch{Status: ptr(domain.StatusHired)})
	require.ErrorIs(t, err, ErrJobNotFound)
	requireKind(t, err, KindNotFound)

	err = f.jobs.Delete(ctx, intruder, job.ID)
	require.ErrorIs(t, err, ErrJobNotFound)

	// The owner's record is untouched.
	got, err := f.jobs.Get(ctx, owner, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApplied, got.Status)

	// Malformed and unknown ids fail the same way.
	require.ErrorIs(t, f.jobs.Delete(ctx, owner, "not-an-id"), ErrJobNotFound)
	require.ErrorIs(t, f.jobs.Delete(ctx, owner, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"), ErrJobNotFound)

	require.NoError(t, f.jobs.Delete(ctx, owner, job.ID))
	_, err = f.jobs.Get(ctx, owner, job.ID)
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestStatusCountsOnlyPresentStatuses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "mia@example.com")

	now := time.Now().UTC()
	f.createAt(t, owner, "A", domain.StatusApplied, now)
	f.createAt(t, owner, "B", domain.StatusApplied, now)
	f.createAt(t, owner, "C", domain.StatusOffer, now)

	counts, err := f.jobs.StatusCounts(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []domain.StatusCount{
		{Status: domain.StatusApplied, Count: 2},
		{Status: domain.StatusOffer, Count: 1},
	}, counts)
}
