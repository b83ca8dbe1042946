package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/aussiebroadwan/jobtrackr/pkg/idx"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type JobService struct {
	Store store.Store

	// Now defaults to time.Now. Tests pin it to build jobs in known months.
	Now func() time.Time
}

func (s *JobService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ListJobsInput carries the raw list query parameters.
type ListJobsInput struct {
	Status  string
	Company string
	Sort    string
	Page    string
	Limit   string
}

// JobList is one page of jobs plus paging totals.
type JobList struct {
	Total      int
	Page       int
	TotalPages int
	Jobs       []domain.Job
}

// Create stores a new job owned by ownerID. Omitted fields take their defaults.
func (s *JobService) Create(ctx context.Context, ownerID string, in domain.JobPatch) (domain.Job, error) {
	now := s.now()
	job := domain.Job{
		ID:          idx.NewAt(now).String(),
		UserID:      ownerID,
		Location:    domain.DefaultLocation,
		Status:      domain.DefaultStatus,
		Source:      domain.DefaultSource,
		DateApplied: now,
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	in.Apply(&job)

	job.Company = strings.TrimSpace(job.Company)
	job.Role = strings.TrimSpace(job.Role)
	if job.Company == "" || job.Role == "" {
		return domain.Job{}, validationError("Company and role are required")
	}
	if in.Status != nil && *in.Status == "" {
		job.Status = domain.DefaultStatus
	}
	if !job.Status.Valid() {
		return domain.Job{}, validationError(invalidStatusMessage(job.Status))
	}
	if strings.TrimSpace(job.Location) == "" {
		job.Location = domain.DefaultLocation
	}
	if strings.TrimSpace(job.Source) == "" {
		job.Source = domain.DefaultSource
	}
	if job.DateApplied.IsZero() {
		job.DateApplied = now
	}

	if err := s.Store.Jobs().CreateJob(ctx, job); err != nil {
		return domain.Job{}, storeError("Failed to create job", err)
	}
	return job, nil
}

// List returns one filtered, sorted page of the owner's jobs.
func (s *JobService) List(ctx context.Context, ownerID string, in ListJobsInput) (JobList, error) {
	page, err := parsePositive(in.Page, DefaultPage, "page")
	if err != nil {
		return JobList{}, err
	}
	limit, err := parsePositive(in.Limit, DefaultLimit, "limit")
	if err != nil {
		return JobList{}, err
	}
	limit = min(limit, MaxLimit)
	if page > math.MaxInt32/limit {
		return JobList{}, validationError("Invalid page: out of range")
	}

	filter, err := parseFilter(in.Status, in.Company)
	if err != nil {
		return JobList{}, err
	}

	jobs, total, err := s.Store.Jobs().ListJobs(ctx, ownerID, domain.JobQuery{
		Filter: filter,
		Sort:   domain.ParseJobSort(in.Sort),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return JobList{}, storeError("Error fetching jobs", err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	return JobList{
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		Jobs:       jobs,
	}, nil
}

// Get fetches one job. Jobs owned by someone else are reported as not found.
func (s *JobService) Get(ctx context.Context, ownerID, jobID string) (domain.Job, error) {
	if !idx.Valid(jobID) {
		return domain.Job{}, ErrJobNotFound
	}
	job, err := s.Store.Jobs().GetJob(ctx, ownerID, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Job{}, ErrJobNotFound
		}
		return domain.Job{}, storeError("Error fetching jobs", err)
	}
	return job, nil
}

// Update applies the supplied fields to the job and refreshes LastUpdated.
func (s *JobService) Update(ctx context.Context, ownerID, jobID string, patch domain.JobPatch) (domain.Job, error) {
	if err := validatePatch(patch); err != nil {
		return domain.Job{}, err
	}
	if !idx.Valid(jobID) {
		return domain.Job{}, ErrJobNotFound
	}

	var updated domain.Job
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		job, err := tx.Jobs().GetJob(ctx, ownerID, jobID)
		if err != nil {
			return err
		}

		patch.Apply(&job)
		job.Company = strings.TrimSpace(job.Company)
		job.Role = strings.TrimSpace(job.Role)

		now := s.now()
		job.LastUpdated = now
		job.UpdatedAt = now

		if err := tx.Jobs().UpdateJob(ctx, job); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Job{}, ErrJobNotFound
		}
		return domain.Job{}, storeError("Failed to update job", err)
	}
	return updated, nil
}

// Delete removes the job. Jobs owned by someone else are reported as not found.
func (s *JobService) Delete(ctx context.Context, ownerID, jobID string) error {
	if !idx.Valid(jobID) {
		return ErrJobNotFound
	}
	if err := s.Store.Jobs().DeleteJob(ctx, ownerID, jobID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrJobNotFound
		}
		return storeError("Failed to delete job", err)
	}
	return nil
}

// StatusCounts returns the count per status, only for statuses in use.
func (s *JobService) StatusCounts(ctx context.Context, ownerID string) ([]domain.StatusCount, error) {
	counts, err := s.Store.Stats().CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, storeError("Failed to fetch stats", err)
	}
	return counts, nil
}

func validatePatch(p domain.JobPatch) error {
	if p.Company != nil && strings.TrimSpace(*p.Company) == "" {
		return validationError("Company cannot be empty")
	}
	if p.Role != nil && strings.TrimSpace(*p.Role) == "" {
		return validationError("Role cannot be empty")
	}
	if p.Status != nil && !p.Status.Valid() {
		return validationError(invalidStatusMessage(*p.Status))
	}
	return nil
}

func parseFilter(status, company string) (domain.JobFilter, error) {
	f := domain.JobFilter{
		Status:  domain.Status(strings.TrimSpace(status)),
		Company: strings.TrimSpace(company),
	}
	if f.Status != "" && !f.Status.Valid() {
		return domain.JobFilter{}, validationError(invalidStatusMessage(f.Status))
	}
	return f, nil
}

// parsePositive parses a 1-based integer query value. Empty means def.
func parsePositive(raw string, def int, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, validationError("Invalid " + name + ": must be a positive integer")
	}
	return n, nil
}

func invalidStatusMessage(s domain.Status) string {
	names := make([]string, len(domain.Statuses))
	for i, v := range domain.Statuses {
		names[i] = v.String()
	}
	return "Invalid status " + strconv.Quote(s.String()) + ": must be one of " + strings.Join(names, ", ")
}
