package jobtrackr_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/jobtrackr/pkg/jobsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for JobTrackr end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "jobtrackr-test:latest"

	testPassword = "correct horse battery"
	testSecret   = "e2e-signing-secret-0123456789abcdef"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building JobTrackr Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up JobTrackr Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/jobtrackr/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// relaxedRateLimits lifts the production limits; tests make many rapid requests.
var relaxedRateLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// setupContainer starts the service with relaxed rate limits and returns its base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, relaxedRateLimits)
}

// setupContainerWithDefaultRateLimits starts the service with production rate
// limits, for the tests that check limiting itself.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"DATABASE_FILE": "/data/jobtrackr.db",
		"JWT_SECRET":    testSecret,
		"JWT_ISSUER":    "jobtrackr",
		"ENV":           "test",
		"LOG_LEVEL":     "info",
		"LOG_FORMAT":    "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"5000/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("5000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser creates an account and returns its session.
func registerUser(t *testing.T, client *jobsdk.SDKClient, name, email string) *jobsdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), name, email, testPassword)
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, session.UserID)
	require.NotEmpty(t, session.Token())

	return session
}

// createJob creates a job with the given company and status.
func createJob(t *testing.T, session *jobsdk.Session, company, status string) *jobsdk.Job {
	t.Helper()

	job, err := session.CreateJob(t.Context(), jobsdk.JobInput{
		Company: jobsdk.String(company),
		Role:    jobsdk.String("Software Engineer"),
		Status:  jobsdk.String(status),
	})
	require.NoError(t, err, "CreateJob should succeed")
	require.Equal(t, session.UserID, job.UserID)

	return job
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *jobsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertStatus checks that err is an API error with the given HTTP status.
func assertStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, status, jobsdk.StatusOf(err), "%s - got: %v", context, err)
}
