package jobsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

// Session is an authenticated session. Tokens are not refreshed; when one
// expires, calls fail with a 401 APIError and the caller should log in again.
type Session struct {
	client *SDKClient
	token  string

	UserID string
	Name   string
	Email  string
}

func newSession(client *SDKClient, auth *AuthResponse) *Session {
	return &Session{
		client: client,
		token:  auth.Token,
		UserID: auth.ID,
		Name:   auth.Name,
		Email:  auth.Email,
	}
}

// Token returns the bearer token of the session.
func (s *Session) Token() string { return s.token }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, s.token, body)
}

// GetProfile returns the authenticated user.
func (s *Session) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ============================================================================
// Jobs
// ============================================================================

// CreateJob creates a job. Company and Role are required.
func (s *Session) CreateJob(ctx context.Context, in JobInput) (*Job, error) {
	resp, err := s.do(ctx, http.MethodPost, "/api/jobs", in)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := decodeJSON(resp, &job, http.StatusCreated); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns one page of jobs.
func (s *Session) ListJobs(ctx context.Context, opts ListJobsOptions) (*JobListResponse, error) {
	q := filterQuery(opts.JobFilter)
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	resp, err := s.do(ctx, http.MethodGet, withQuery("/api/jobs", q), nil)
	if err != nil {
		return nil, err
	}

	var list JobListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetJob fetches one job.
func (s *Session) GetJob(ctx context.Context, id string) (*Job, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := decodeJSON(resp, &job, http.StatusOK); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob applies the non-nil fields of in to the job.
func (s *Session) UpdateJob(ctx context.Context, id string, in JobInput) (*Job, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/api/jobs/"+url.PathEscape(id), in)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := decodeJSON(resp, &job, http.StatusOK); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob deletes the job.
func (s *Session) DeleteJob(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/api/jobs/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// GetStatusCounts returns the number of jobs per status.
func (s *Session) GetStatusCounts(ctx context.Context) (StatusCounts, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/jobs/stats", nil)
	if err != nil {
		return nil, err
	}

	var counts StatusCounts
	if err := decodeJSON(resp, &counts, http.StatusOK); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetStats returns the aggregate statistics.
func (s *Session) GetStats(ctx context.Context) (*StatsResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats StatsResponse
	if err := decodeJSON(resp, &stats, http.StatusOK); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ============================================================================
// Export
// ============================================================================

// Export downloads the jobs matching filter in format (ExportCSV,
// ExportExcel or ExportPDF).
func (s *Session) Export(ctx context.Context, format string, filter JobFilter) (*ExportResult, error) {
	path := withQuery("/api/jobs/export/"+url.PathEscape(format), filterQuery(filter))
	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := parseErrorResponse(resp, body); err != nil {
		return nil, err
	}

	disposition := resp.Header.Get("Content-Disposition")
	if disposition == "" {
		var msg MessageResponse
		if err := json.Unmarshal(body, &msg); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &ExportResult{Message: msg.Message}, nil
	}

	result := &ExportResult{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        body,
	}
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		result.Filename = params["filename"]
	}
	return result, nil
}

func filterQuery(f JobFilter) url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Company != "" {
		q.Set("company", f.Company)
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
