package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// pdfColumns mirror ExcelColumns scaled to a landscape A4 page (277mm usable).
var pdfColumns = []struct {
	Title string
	Width float64
}{
	{"ID", 44},
	{"Company", 34},
	{"Role", 38},
	{"Location", 25},
	{"Status", 20},
	{"Date Applied", 22},
	{"Next Step", 30},
	{"Source", 20},
	{"Notes", 44},
}

const (
	pdfMargin    = 10.0
	pdfRowHeight = 6.0
	// MaxPDFNotes caps notes before they are fitted to the column.
	MaxPDFNotes = 120
)

// WritePDF renders rows as a landscape table report.
func WritePDF(w io.Writer, rows []Row, generatedAt time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("JobTrackr Jobs Export", false)
	pdf.SetCreationDate(generatedAt)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "JobTrackr Jobs Export")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format(time.RFC1123)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Jobs: %d", len(rows)))
	pdf.Ln(9)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.Width, pdfRowHeight+1, col.Title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, r := range rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}

		r.Notes = truncateRunes(SingleLine(r.Notes), MaxPDFNotes)
		r.NextStep = SingleLine(r.NextStep)
		for i, v := range r.Values() {
			col := pdfColumns[i]
			pdf.CellFormat(col.Width, pdfRowHeight, fitWidth(pdf, tr(v), col.Width-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

// fitWidth shortens s with a trailing "..." until it fits in width mm at the
// current font.
func fitWidth(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"...") > width {
		b = b[:len(b)-1]
	}
	return string(b) + "..."
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
