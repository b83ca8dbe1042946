package http

import (
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/pkg/jobsdk"
)

func toJob(j domain.Job) jobsdk.Job {
	return jobsdk.Job{
		ID:          j.ID,
		UserID:      j.UserID,
		Company:     j.Company,
		Role:        j.Role,
		Location:    j.Location,
		Status:      j.Status.String(),
		DateApplied: j.DateApplied,
		NextStep:    j.NextStep,
		Notes:       j.Notes,
		Source:      j.Source,
		LastUpdated: j.LastUpdated,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func toJobs(jobs []domain.Job) []jobsdk.Job {
	out := make([]jobsdk.Job, len(jobs))
	for i, j := range jobs {
		out[i] = toJob(j)
	}
	return out
}

// toPatch maps a request body onto a patch. The body has no owner field, so
// an owner sent by the client is dropped by the JSON decoder.
func toPatch(in jobsdk.JobInput) domain.JobPatch {
	p := domain.JobPatch{
		Company:     in.Company,
		Role:        in.Role,
		Location:    in.Location,
		NextStep:    in.NextStep,
		Notes:       in.Notes,
		Source:      in.Source,
	}
	if in.DateApplied != nil {
		applied := in.DateApplied.UTC()
		p.DateApplied = &applied
	}
	if in.Status != nil {
		st := domain.Status(*in.Status)
		p.Status = &st
	}
	return p
}

func toStatusCounts(counts []domain.StatusCount) jobsdk.StatusCounts {
	out := make(jobsdk.StatusCounts, len(counts))
	for i, c := range counts {
		out[i] = jobsdk.StatusCount{Status: c.Status.String(), Count: c.Count}
	}
	return out
}

func toStats(s domain.Stats) jobsdk.StatsResponse {
	trend := make([]jobsdk.MonthCount, len(s.MonthlyTrend))
	for i, m := range s.MonthlyTrend {
		trend[i] = jobsdk.MonthCount{Month: m.Label(), Count: m.Count}
	}
	top := make([]jobsdk.CompanyCount, len(s.TopCompanies))
	for i, c := range s.TopCompanies {
		top[i] = jobsdk.CompanyCount{Company: c.Company, Count: c.Count}
	}
	return jobsdk.StatsResponse{
		Total:        s.Total,
		ByStatus:     toStatusCounts(s.ByStatus),
		MonthlyTrend: trend,
		TopCompanies: top,
	}
}

func toProfile(u domain.User) jobsdk.ProfileResponse {
	return jobsdk.ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
