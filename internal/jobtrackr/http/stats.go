package http

import (
	"net/http"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP handles GET /api/stats
//
//	@Summary		Aggregate statistics
//	@Description	Total, count per status (highest first), jobs per month for the 6 most recent months with jobs (oldest first) and the 5 companies with most applications.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	jobsdk.StatsResponse
//	@Failure		401	{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500	{object}	jobsdk.ErrorResponse	"Failed to fetch stats"
//	@Router			/api/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	stats, err := h.StatsService.Stats(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toStats(stats))
}
