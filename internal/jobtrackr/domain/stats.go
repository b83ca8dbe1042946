package domain

import "fmt"

type StatusCount struct {
	Status Status
	Count  int
}

// MonthCount is the number of jobs created in one calendar month (UTC).
type MonthCount struct {
	Year  int
	Month int
	Count int
}

// Label renders the month as "YYYY-MM".
func (m MonthCount) Label() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

type CompanyCount struct {
	Company string
	Count   int
}

// Stats is the aggregate view of one owner's jobs.
type Stats struct {
	Total        int
	ByStatus     []StatusCount // count descending
	MonthlyTrend []MonthCount  // oldest first
	TopCompanies []CompanyCount
}
