package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
	"github.com/aussiebroadwan/jobtrackr/pkg/jobsdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	jobsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := jobsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Reports the database and, when configured, the shared rate limiter backend
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	jobsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	jobsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	limiterPing func(context.Context) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &jobsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// The limiter fails open, so a broken backend degrades but never blocks.
		if limiterPing != nil {
			checks.RateLimiter = "ok"
			if err := limiterPing(r.Context()); err != nil {
				checks.RateLimiter = "error: " + err.Error()
				overallStatus = "degraded"
			}
		}

		response := jobsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
