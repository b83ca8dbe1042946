package domain

import (
	"strings"
	"time"
)

// Status is the stage an application has reached.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
	StatusHired     Status = "Hired"
)

// Statuses lists every valid status in pipeline order.
var Statuses = []Status{
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusHired,
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// Defaults applied to fields omitted on creation.
const (
	DefaultLocation = "Remote"
	DefaultSource   = "LinkedIn"
	DefaultStatus   = StatusApplied
)

type Job struct {
	ID          string
	UserID      string // owner, immutable
	Company     string
	Role        string
	Location    string
	Status      Status
	DateApplied time.Time
	NextStep    string
	Notes       string
	Source      string
	LastUpdated time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobPatch carries the fields of a partial update. Nil means "leave as is".
// There is deliberately no owner field.
type JobPatch struct {
	Company     *string
	Role        *string
	Location    *string
	Status      *Status
	DateApplied *time.Time
	NextStep    *string
	Notes       *string
	Source      *string
}

// Apply copies every non-nil field of p onto j.
func (p JobPatch) Apply(j *Job) {
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Role != nil {
		j.Role = *p.Role
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.DateApplied != nil {
		j.DateApplied = *p.DateApplied
	}
	if p.NextStep != nil {
		j.NextStep = *p.NextStep
	}
	if p.Notes != nil {
		j.Notes = *p.Notes
	}
	if p.Source != nil {
		j.Source = *p.Source
	}
}

// JobFilter narrows list and export queries. Zero values match everything.
type JobFilter struct {
	Status  Status
	Company string // case-insensitive literal substring
}

// JobSort orders list results.
type JobSort string

const (
	SortNatural JobSort = ""
	SortLatest  JobSort = "latest"
	SortOldest  JobSort = "oldest"
	SortCompany JobSort = "company"
)

// ParseJobSort maps the sort query value. Unknown values fall back to
// natural (insertion) order.
func ParseJobSort(s string) JobSort {
	switch v := JobSort(strings.ToLower(strings.TrimSpace(s))); v {
	case SortLatest, SortOldest, SortCompany:
		return v
	default:
		return SortNatural
	}
}

// JobQuery is a filtered, sorted, paginated list request.
type JobQuery struct {
	Filter JobFilter
	Sort   JobSort
	Limit  int
	Offset int
}

// EscapeLike escapes the LIKE metacharacters in s using '\' so the pattern
// matches s literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
