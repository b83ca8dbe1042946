package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store/drivers/sqlite"
	"github.com/aussiebroadwan/jobtrackr/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  store.Store
	tokens *TokenService
	auth   *AuthService
	jobs   *JobService
	stats  *StatsService
	export *ExportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore("file::memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	secret, err := cryptox.GenerateSecret(cryptox.TokenSize256)
	require.NoError(t, err)
	tokens, err := NewTokenService(secret, "jobtrackr-test", time.Hour)
	require.NoError(t, err)

	return &fixture{
		store:  st,
		tokens: tokens,
		auth:   &AuthService{Store: st, Tokens: tokens},
		jobs:   &JobService{Store: st},
		stats:  &StatsService{Store: st},
		export: &ExportService{Store: st},
	}
}

// register creates a user and returns its ID.
func (f *fixture) register(t *testing.T, email string) string {
	t.Helper()
	res, err := f.auth.Register(context.Background(), "Test User", email, "correct horse")
	require.NoError(t, err)
	return res.User.ID
}

// createAt creates a job for owner as if it were created at ts.
func (f *fixture) createAt(t *testing.T, owner, company string, status domain.Status, ts time.Time) domain.Job {
	t.Helper()
	js := &JobService{Store: f.store, Now: func() time.Time { return ts }}
	job, err := js.Create(context.Background(), owner, domain.JobPatch{
		Company: ptr(company),
		Role:    ptr("Engineer"),
		Status:  ptr(status),
	})
	require.NoError(t, err)
	return job
}

func ptr[T any](v T) *T { return &v }

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "error: %v", err)
}
