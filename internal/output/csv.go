package output

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders t as RFC 4180 CSV with CRLF line endings.
func WriteCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(t.Headers); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Error()
}
