package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV renders rows as CSV with a header of Fields. The document is built
// in memory and only written to w once complete, so a failure never leaves a
// partial file on the wire.
func WriteCSV(w io.Writer, rows []Row) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(Fields); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, r := range rows {
		r.Notes = SingleLine(r.Notes)
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}
