package http

import (
	"net/http"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
	"github.com/aussiebroadwan/jobtrackr/pkg/jobsdk"
)

// JobsHandler handles the owner-scoped job endpoints.
type JobsHandler struct {
	JobService *service.JobService
}

// HandleCreate handles POST /api/jobs
//
//	@Summary		Create job
//	@Description	Company and role are required. Location defaults to "Remote", status to "Applied", source to "LinkedIn" and dateApplied to now.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		jobsdk.JobInput			true	"Job fields"
//	@Success		201		{object}	jobsdk.Job
//	@Failure		400		{object}	jobsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500		{object}	jobsdk.ErrorResponse	"Failed to create job"
//	@Router			/api/jobs [post].
func (h *JobsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req jobsdk.JobInput
	if !decodeBody(w, r, &req) {
		return
	}

	job, err := h.JobService.Create(r.Context(), uid, toPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toJob(job))
}

// HandleList handles GET /api/jobs
//
//	@Summary		List jobs
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Exact status"	Enums(Applied, Interview, Offer, Rejected, Hired)
//	@Param			company	query		string	false	"Case-insensitive substring of the company"
//	@Param			sort	query		string	false	"latest, oldest or company"
//	@Param			page	query		int		false	"Page, from 1"		default(1)
//	@Param			limit	query		int		false	"Page size, max 100"	default(10)
//	@Success		200		{object}	jobsdk.JobListResponse
//	@Failure		400		{object}	jobsdk.ErrorResponse	"Invalid page, limit or status"
//	@Failure		401		{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500		{object}	jobsdk.ErrorResponse	"Error fetching jobs"
//	@Router			/api/jobs [get].
func (h *JobsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	list, err := h.JobService.List(r.Context(), uid, service.ListJobsInput{
		Status:  q.Get("status"),
		Company: q.Get("company"),
		Sort:    q.Get("sort"),
		Page:    q.Get("page"),
		Limit:   q.Get("limit"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, jobsdk.JobListResponse{
		Total:      list.Total,
		Page:       list.Page,
		TotalPages: list.TotalPages,
		Jobs:       toJobs(list.Jobs),
	})
}

// HandleGet handles GET /api/jobs/{id}
//
//	@Summary		Get job
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"
//	@Success		200	{object}	jobsdk.Job
//	@Failure		401	{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	jobsdk.ErrorResponse	"Job not found"
//	@Router			/api/jobs/{id} [get].
func (h *JobsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	job, err := h.JobService.Get(r.Context(), uid, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toJob(job))
}

// HandleUpdate handles PATCH /api/jobs/{id}
//
//	@Summary		Update job
//	@Description	Applies only the supplied fields and refreshes lastUpdated. Jobs of other users are reported as not found.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Job ID"
//	@Param			request	body		jobsdk.JobInput			true	"Fields to change"
//	@Success		200		{object}	jobsdk.Job
//	@Failure		400		{object}	jobsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404		{object}	jobsdk.ErrorResponse	"Job not found"
//	@Failure		500		{object}	jobsdk.ErrorResponse	"Failed to update job"
//	@Router			/api/jobs/{id} [patch].
func (h *JobsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req jobsdk.JobInput
	if !decodeBody(w, r, &req) {
		return
	}

	job, err := h.JobService.Update(r.Context(), uid, r.PathValue("id"), toPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toJob(job))
}

// HandleDelete handles DELETE /api/jobs/{id}
//
//	@Summary		Delete job
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"
//	@Success		200	{object}	jobsdk.MessageResponse	"Job deleted successfully"
//	@Failure		401	{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	jobsdk.ErrorResponse	"Job not found"
//	@Failure		500	{object}	jobsdk.ErrorResponse	"Failed to delete job"
//	@Router			/api/jobs/{id} [delete].
func (h *JobsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.JobService.Delete(r.Context(), uid, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Job deleted successfully")
}

// HandleStatusCounts handles GET /api/jobs/stats
//
//	@Summary		Jobs per status
//	@Description	Object of status to count, highest count first. Statuses with no jobs are omitted.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]int
//	@Failure		401	{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500	{object}	jobsdk.ErrorResponse	"Failed to fetch stats"
//	@Router			/api/jobs/stats [get].
func (h *JobsHandler) HandleStatusCounts(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	counts, err := h.JobService.StatusCounts(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toStatusCounts(counts))
}
