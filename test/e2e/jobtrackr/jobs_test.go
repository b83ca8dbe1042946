package jobtrackr_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/jobtrackr/pkg/jobsdk"
	"github.com/stretchr/testify/require"
)

// TestJobLifecycle creates, reads, updates and deletes a job.
func TestJobLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := jobsdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "Ada", "ada@example.com")

	job := createJob(t, session, "Acme", jobsdk.StatusApplied)
	require.Equal(t, "Remote", job.Location)
	require.Equal(t, "LinkedIn", job.Source)

	got, err := session.GetJob(t.Context(), job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, got.ID)

	updated, err := session.UpdateJob(t.Context(), job.ID, jobsdk.JobInput{
		Status:   jobsdk.String(jobsdk.StatusInterview),
		NextStep: jobsdk.String("Onsite on Friday"),
	})
	require.NoError(t, err)
	require.Equal(t, jobsdk.StatusInterview, updated.Status)
	require.Equal(t, "Onsite on Friday", updated.NextStep)
	require.Equal(t, "Acme", updated.Company)

	_, err = session.UpdateJob(t.Context(), job.ID, jobsdk.JobInput{Status: jobsdk.String("Ghosted")})
	assertStatus(t, err, http.StatusBadRequest, "invalid status")

	require.NoError(t, session.DeleteJob(t.Context(), job.ID))

	_, err = session.GetJob(t.Context(), job.ID)
	require.True(t, jobsdk.IsNotFound(err), "got: %v", err)
}

// TestJobsAreIsolatedPerUser verifies a user never sees or touches another user's jobs.
func TestJobsAreIsolatedPerUser(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := jobsdk.NewSDKClient(baseURL)
	alice := registerUser(t, client, "Alice", "alice@example.com")
	bob := registerUser(t, client, "Bob", "bob@example.com")

	job := createJob(t, alice, "Initech", jobsdk.StatusOffer)

	_, err := bob.GetJob(t.Context(), job.ID)
	require.True(t, jobsdk.IsNotFound(err), "get: %v", err)

	_, err = bob.UpdateJob(t.Context(), job.ID, jobsdk.JobInput{Notes: jobsdk.String("mine")})
	require.True(t, jobsdk.IsNotFound(err), "update: %v", err)

	err = bob.DeleteJob(t.Context(), job.ID)
	require.True(t, jobsdk.IsNotFound(err), "delete: %v", err)

	list, err := bob.ListJobs(t.Context(), jobsdk.ListJobsOptions{})
	require.NoError(t, err)
	require.Zero(t, list.Total)

	still, err := alice.GetJob(t.Context(), job.ID)
	require.NoError(t, err)
	require.Empty(t, still.Notes)
}

// TestListStatsAndExport covers filtering, pagination, aggregates and downloads.
func TestListStatsAndExport(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := jobsdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "Linus", "linus@example.com")

	createJob(t, session, "Acme", jobsdk.StatusApplied)
	createJob(t, session, "Acme", jobsdk.StatusInterview)
	createJob(t, session, "Globex", jobsdk.StatusInterview)
	createJob(t, session, "Umbrella", jobsdk.StatusRejected)

	list, err := session.ListJobs(t.Context(), jobsdk.ListJobsOptions{
		JobFilter: jobsdk.JobFilter{Status: jobsdk.StatusInterview},
		Limit:     1,
	})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	require.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Jobs, 1)

	list, err = session.ListJobs(t.Context(), jobsdk.ListJobsOptions{
		JobFilter: jobsdk.JobFilter{Company: "acm"},
		Sort:      "oldest",
	})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	require.Equal(t, jobsdk.StatusApplied, list.Jobs[0].Status)

	counts, err := session.GetStatusCounts(t.Context())
	require.NoError(t, err)
	require.Equal(t, jobsdk.StatusInterview, counts[0].Status)
	require.Equal(t, 2, counts.Get(jobsdk.StatusInterview))
	require.Zero(t, counts.Get(jobsdk.StatusHired))

	stats, err := session.GetStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, 4, stats.Total)
	require.Equal(t, "Acme", stats.TopCompanies[0].Company)
	require.Equal(t, 2, stats.TopCompanies[0].Count)
	require.Len(t, stats.MonthlyTrend, 1)

	t.Run("csv", func(t *testing.T) {
		res, err := session.Export(t.Context(), jobsdk.ExportCSV, jobsdk.JobFilter{})
		require.NoError(t, err)
		require.False(t, res.Empty())
		require.Regexp(t, `^jobtrackr_jobs_\d+\.csv$`, res.Filename)

		records, err := csv.NewReader(bytes.NewReader(res.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 5)
	})

	t.Run("excel and pdf", func(t *testing.T) {
		res, err := session.Export(t.Context(), jobsdk.ExportExcel, jobsdk.JobFilter{})
		require.NoError(t, err)
		require.Regexp(t, `\.xlsx$`, res.Filename)
		require.True(t, bytes.HasPrefix(res.Data, []byte("PK")))

		res, err = session.Export(t.Context(), jobsdk.ExportPDF, jobsdk.JobFilter{Company: "globex"})
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(res.Data, []byte("%PDF")))
	})

	t.Run("nothing to export", func(t *testing.T) {
		res, err := session.Export(t.Context(), jobsdk.ExportCSV, jobsdk.JobFilter{Status: jobsdk.StatusHired})
		require.NoError(t, err)
		require.True(t, res.Empty())
		require.Equal(t, "No jobs to export", res.Message)
	})
}
