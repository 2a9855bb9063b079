// Package output renders role/color tables in the CLI's output formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/gbtheme/internal/textutil"
)

type Table struct {
	Headers []string
	Rows    [][]string
}

// Decorator may wrap a cell in escape sequences before it is padded.
type Decorator func(row, col int, cell string) string

func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Write renders t in format: table, json, ndjson, csv or markdown.
func Write(w io.Writer, format string, t Table, decorate Decorator) error {
	switch format {
	case "json":
		return WriteJSON(w, t.Records())
	case "ndjson":
		return WriteNDJSON(w, t)
	case "csv":
		return WriteCSV(w, t)
	case "markdown":
		return WriteMarkdownTable(w, t)
	case "table", "":
		return WriteText(w, t, decorate)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Records converts rows to objects keyed by lower-cased header.
func (t Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				rec[strings.ToLower(h)] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// WriteText renders an aligned plain-text table with two spaces between columns.
func WriteText(w io.Writer, t Table, decorate Decorator) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if cw := textutil.VisibleWidth(row[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	if err := writeLine(w, t.Headers, widths); err != nil {
		return err
	}
	for r, row := range t.Rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			if decorate != nil {
				cell = decorate(r, c, cell)
			}
			cells[c] = cell
		}
		if err := writeLine(w, cells, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 || i >= len(widths) {
			b.WriteString(cell)
			continue
		}
		b.WriteString(textutil.PadRight(cell, widths[i]))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
