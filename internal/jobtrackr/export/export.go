// Package export renders a user's jobs as downloadable files.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
)

// Format is a download format, named as it appears in the export route.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// ParseFormat maps a route segment to a Format.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatExcel, FormatPDF:
		return f, true
	default:
		return "", false
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func (f Format) Extension() string {
	switch f {
	case FormatExcel:
		return "xlsx"
	default:
		return string(f)
	}
}

// Filename is the attachment name for an export generated at now.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("jobtrackr_jobs_%d.%s", now.UnixMilli(), f.Extension())
}

// Write renders rows to w in format f.
func Write(w io.Writer, f Format, rows []Row, generatedAt time.Time) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatExcel:
		return WriteExcel(w, rows)
	case FormatPDF:
		return WritePDF(w, rows, generatedAt)
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
}

// DateLayout is how DateApplied appears in exports.
const DateLayout = "2006-01-02"

// Fields are the flattened row keys, in column order.
var Fields = []string{"id", "company", "role", "location", "status", "dateApplied", "nextStep", "source", "notes"}

// Row is one job flattened to strings.
type Row struct {
	ID          string
	Company     string
	Role        string
	Location    string
	Status      string
	DateApplied string
	NextStep    string
	Source      string
	Notes       string
}

// Values returns the row in Fields order.
func (r Row) Values() []string {
	return []string{r.ID, r.Company, r.Role, r.Location, r.Status, r.DateApplied, r.NextStep, r.Source, r.Notes}
}

// NewRow flattens j. A zero DateApplied renders blank.
func NewRow(j domain.Job) Row {
	var applied string
	if !j.DateApplied.IsZero() {
		applied = j.DateApplied.UTC().Format(DateLayout)
	}
	return Row{
		ID:          j.ID,
		Company:     j.Company,
		Role:        j.Role,
		Location:    j.Location,
		Status:      j.Status.String(),
		DateApplied: applied,
		NextStep:    j.NextStep,
		Source:      j.Source,
		Notes:       j.Notes,
	}
}

// Rows flattens jobs preserving order.
func Rows(jobs []domain.Job) []Row {
	rows := make([]Row, len(jobs))
	for i, j := range jobs {
		rows[i] = NewRow(j)
	}
	return rows
}

var lineBreaks = regexp.MustCompile(`\r?\n|\r`)

// SingleLine replaces every line break in s with a space.
func SingleLine(s string) string {
	return lineBreaks.ReplaceAllString(s, " ")
}
