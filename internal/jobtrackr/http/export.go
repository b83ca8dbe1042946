package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/export"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
	"github.com/aussiebroadwan/jobtrackr/pkg/slogx"
)

type ExportHandler struct {
	ExportService *service.ExportService
}

// ServeHTTP downloads the caller's jobs in the format named by the route.
//
//	@Summary		Export jobs
//	@Description	Downloads every matching job, newest first. Answers 200 with a message instead of a file when nothing matches.
//	@Tags			Export
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Produce		application/pdf
//	@Param			format	path		string	true	"csv, excel or pdf"	Enums(csv, excel, pdf)
//	@Param			status	query		string	false	"Exact status"
//	@Param			company	query		string	false	"Case-insensitive substring of the company"
//	@Success		200		{file}		file	"Attachment jobtrackr_jobs_<millis>.<ext>, or {message: No jobs to export}"
//	@Failure		400		{object}	jobsdk.ErrorResponse	"Invalid status filter"
//	@Failure		401		{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404		{object}	jobsdk.ErrorResponse	"Unsupported export format"
//	@Failure		500		{object}	jobsdk.ErrorResponse	"Failed to export"
//	@Router			/api/jobs/export/{format} [get].
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	format, ok := export.ParseFormat(r.PathValue("format"))
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrCodeNotFound, "Unsupported export format")
		return
	}

	q := r.URL.Query()
	exp, err := h.ExportService.Prepare(r.Context(), uid, format, q.Get("status"), q.Get("company"))
	if errors.Is(err, service.ErrNoJobsToExport) {
		httpx.WriteMessage(w, http.StatusOK, "No jobs to export")
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.Attachment(w, exp.ContentType, exp.Filename)
	w.WriteHeader(http.StatusOK)

	// Headers are gone by now; a failure can only be logged.
	if err := exp.Render(w); err != nil {
		slogx.FromContext(r.Context()).Error("export render failed",
			slog.String("format", string(format)), slog.Any("error", err))
	}
}
