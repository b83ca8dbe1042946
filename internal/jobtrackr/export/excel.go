package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of the Excel export.
const SheetName = "Jobs"

// ExcelColumns are the header titles and widths, in Fields order.
var ExcelColumns = []struct {
	Title string
	Width float64
}{
	{"ID", 32},
	{"Company", 25},
	{"Role", 30},
	{"Location", 20},
	{"Status", 15},
	{"Date Applied", 15},
	{"Next Step", 25},
	{"Source", 15},
	{"Notes", 50},
}

// WriteExcel streams rows into an XLSX workbook written to w. The header row
// is bold and frozen. Notes are kept verbatim.
func WriteExcel(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("excel sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("excel stream: %w", err)
	}

	// Widths and panes must be set before the first row.
	for i, col := range ExcelColumns {
		if err := sw.SetColWidth(i+1, i+1, col.Width); err != nil {
			return fmt.Errorf("excel column width: %w", err)
		}
	}
	if err := sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("excel panes: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel style: %w", err)
	}

	header := make([]any, len(ExcelColumns))
	for i, col := range ExcelColumns {
		header[i] = excelize.Cell{StyleID: bold, Value: col.Title}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("excel header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := r.Values()
		values := make([]any, len(vals))
		for j, v := range vals {
			values[j] = v
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("excel row %s: %w", r.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("excel flush: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("excel write: %w", err)
	}
	return nil
}
