package jobsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
)

// ============================================================================
// Error Responses
// ============================================================================

// ErrorResponse is the body of every non-2xx response. Error carries a stable
// machine code such as "not_found".
type ErrorResponse = httpx.ErrorResponse

// MessageResponse carries an informational message, such as the result of a
// delete or an export that matched no jobs.
type MessageResponse = httpx.MessageResponse

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register (201) and login (200).
type AuthResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProfileResponse is the authenticated user, without credentials.
type ProfileResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================================================================
// Jobs
// ============================================================================

// Job statuses accepted by the service.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
	StatusHired     = "Hired"
)

// Job is a job application record.
type Job struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	DateApplied time.Time `json:"dateApplied"`
	NextStep    string    `json:"nextStep,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Source      string    `json:"source"`
	LastUpdated time.Time `json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JobInput is the body of POST /api/jobs and PATCH /api/jobs/{id}. Omitted
// fields take their defaults on create and are left unchanged on update.
type JobInput struct {
	Company     *string    `json:"company,omitempty"`
	Role        *string    `json:"role,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DateApplied *Date   `json:"dateApplied,omitempty"`
	NextStep    *string `json:"nextStep,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// DateLayout is the date-only form accepted for Date.
const DateLayout = "2006-01-02"

// Date is a point in time that decodes from either an RFC 3339 timestamp or
// a plain "2006-01-02" date, which is taken as midnight UTC. It encodes as
// RFC 3339.
type Date struct {
	time.Time
}

// NewDate wraps t, for building a JobInput.
func NewDate(t time.Time) *Date { return &Date{Time: t} }

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("jobsdk: date: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("jobsdk: date %q: want RFC 3339 or %s", s, DateLayout)
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}

// String returns a pointer to s, for building a JobInput.
func String(s string) *string { return &s }

// JobFilter narrows list and export requests. Zero values match everything.
type JobFilter struct {
	Status  string
	Company string
}

// ListJobsOptions are the query parameters of GET /api/jobs.
type ListJobsOptions struct {
	JobFilter

	// Sort is "latest", "oldest" or "company"; anything else is natural order.
	Sort  string
	Page  int
	Limit int
}

// JobListResponse is one page of jobs.
type JobListResponse struct {
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Jobs       []Job `json:"jobs"`
}

// ============================================================================
// Stats
// ============================================================================

// StatusCount is the number of jobs in one status.
type StatusCount struct {
	Status string
	Count  int
}

// StatusCounts is an ordered status -> count mapping. It is encoded as a JSON
// object whose keys keep the slice order.
type StatusCounts []StatusCount

// Get returns the count for status, or 0.
func (s StatusCounts) Get(status string) int {
	for _, c := range s {
		if c.Status == status {
			return c.Count
		}
	}
	return 0
}

// MarshalJSON writes the counts as an object in slice order.
func (s StatusCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Status)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping the key order of the document.
func (s *StatusCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("jobsdk: status counts: expected object, got %v", tok)
	}

	out := StatusCounts{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("jobsdk: status counts: unexpected key %v", tok)
		}
		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("jobsdk: status counts: %s: %w", key, err)
		}
		out = append(out, StatusCount{Status: key, Count: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// MonthCount is the number of jobs created in one month.
type MonthCount struct {
	// Month is formatted "YYYY-MM"
	Month string `json:"month"`
	Count int    `json:"count"`
}

// CompanyCount is the number of jobs at one company.
type CompanyCount struct {
	Company string `json:"_id"`
	Count   int    `json:"count"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	Total        int            `json:"total"`
	ByStatus     StatusCounts   `json:"byStatus"`
	MonthlyTrend []MonthCount   `json:"monthlyTrend"`
	TopCompanies []CompanyCount `json:"topCompanies"`
}

// ============================================================================
// Export
// ============================================================================

// Export formats, as they appear in the route.
const (
	ExportCSV   = "csv"
	ExportExcel = "excel"
	ExportPDF   = "pdf"
)

// ExportResult is a downloaded export. When the filter matched nothing the
// service answers with a message instead of a file; Empty reports that case.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
	Message     string
}

// Empty reports whether the export matched no jobs.
func (r *ExportResult) Empty() bool { return len(r.Data) == 0 && r.Message != "" }

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz.
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of each dependency.
type HealthChecks struct {
	Database string `json:"database"`

	// RateLimiter is only reported when a shared limiter backend is configured.
	RateLimiter string `json:"rateLimiter,omitempty"`
}
