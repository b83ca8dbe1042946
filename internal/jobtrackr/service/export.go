package service

import (
	"context"
	"io"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/export"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
)

type ExportService struct {
	Store store.Store

	// Now defaults to time.Now and stamps the filename.
	Now func() time.Time
}

// Export is a prepared download. Nothing is rendered until Render.
type Export struct {
	Format      export.Format
	Filename    string
	ContentType string
	Rows        []export.Row
	GeneratedAt time.Time
}

// Render writes the file to w.
func (e *Export) Render(w io.Writer) error {
	return export.Write(w, e.Format, e.Rows, e.GeneratedAt)
}

// Prepare loads the owner's jobs matching the filters, newest first. It
// returns ErrNoJobsToExport when nothing matched.
func (s *ExportService) Prepare(ctx context.Context, ownerID string, format export.Format, status, company string) (*Export, error) {
	failure := "Failed to export " + exportLabel(format)

	filter, err := parseFilter(status, company)
	if err != nil {
		return nil, err
	}

	jobs, err := s.Store.Jobs().ExportJobs(ctx, ownerID, filter)
	if err != nil {
		return nil, storeError(failure, err)
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsToExport
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return &Export{
		Format:      format,
		Filename:    export.Filename(format, now),
		ContentType: format.ContentType(),
		Rows:        export.Rows(jobs),
		GeneratedAt: now.UTC(),
	}, nil
}

func exportLabel(f export.Format) string {
	switch f {
	case export.FormatCSV:
		return "CSV"
	case export.FormatExcel:
		return "Excel"
	case export.FormatPDF:
		return "PDF"
	default:
		return string(f)
	}
}
