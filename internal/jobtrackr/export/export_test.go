package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/export"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{
			ID:          "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
			Company:     "Acme, Inc.",
			Role:        "Backend Engineer",
			Location:    "Remote",
			Status:      domain.StatusInterview,
			DateApplied: time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC),
			NextStep:    "Onsite",
			Source:      "LinkedIn",
			Notes:       "line one\r\nline two\nline three\rend",
		},
		{
			ID:       "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZW",
			Company:  "Globex",
			Role:     "SRE",
			Location: "Berlin",
			Status:   domain.StatusApplied,
			Source:   "Referral",
		},
	}
}

func TestNewRow(t *testing.T) {
	rows := export.Rows(sampleJobs())
	require.Len(t, rows, 2)
	require.Equal(t, "2024-03-09", rows[0].DateApplied)
	require.Equal(t, "", rows[1].DateApplied, "zero date renders blank")
	require.Equal(t, "Interview", rows[0].Status)
	require.Len(t, rows[0].Values(), len(export.Fields))
}

func TestSingleLine(t *testing.T) {
	require.Equal(t, "a b c d", export.SingleLine("a\r\nb\nc\rd"))
	require.Equal(t, "a  b", export.SingleLine("a\n\nb"))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, export.Rows(sampleJobs())))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, export.Fields, records[0])
	require.Equal(t, "Acme, Inc.", records[1][1])
	require.Equal(t, "line one line two line three end", records[1][8])
	require.Equal(t, "2024-03-09", records[1][5])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))
	require.Equal(t, strings.Join(export.Fields, ",")+"\n", buf.String())
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteExcel(&buf, export.Rows(sampleJobs())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.Equal(t, []string{export.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"ID", "Company", "Role", "Location", "Status", "Date Applied", "Next Step", "Source", "Notes"}, rows[0])
	require.Contains(t, rows[1][8], "line two\nline three", "notes keep their line breaks in the workbook")

	width, err := f.GetColWidth(export.SheetName, "A")
	require.NoError(t, err)
	require.InDelta(t, 32, width, 0.01)
	width, err = f.GetColWidth(export.SheetName, "I")
	require.NoError(t, err)
	require.InDelta(t, 50, width, 0.01)

	panes, err := f.GetPanes(export.SheetName)
	require.NoError(t, err)
	require.True(t, panes.Freeze)
	require.Equal(t, 1, panes.YSplit)

	styleID, err := f.GetCellStyle(export.SheetName, "B1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	require.True(t, style.Font.Bold)
}

func TestWritePDF(t *testing.T) {
	jobs := sampleJobs()
	jobs[0].Notes = strings.Repeat("long note ", 100)
	for range 60 {
		jobs = append(jobs, jobs[1])
	}

	var buf bytes.Buffer
	require.NoError(t, export.WritePDF(&buf, export.Rows(jobs), time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	require.Contains(t, buf.String(), "%%EOF")
}

func TestFormats(t *testing.T) {
	f, ok := export.ParseFormat("Excel")
	require.True(t, ok)
	require.Equal(t, export.FormatExcel, f)
	_, ok = export.ParseFormat("docx")
	require.False(t, ok)

	now := time.UnixMilli(1717000000123)
	require.Equal(t, "jobtrackr_jobs_1717000000123.csv", export.Filename(export.FormatCSV, now))
	require.Equal(t, "jobtrackr_jobs_1717000000123.xlsx", export.Filename(export.FormatExcel, now))
	require.Equal(t, "jobtrackr_jobs_1717000000123.pdf", export.Filename(export.FormatPDF, now))
	require.Equal(t, "text/csv", export.FormatCSV.ContentType())
	require.Equal(t, "application/pdf", export.FormatPDF.ContentType())
}
