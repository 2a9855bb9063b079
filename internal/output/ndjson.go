package output

import (
	"encoding/json"
	"io"
)

// WriteNDJSON streams one JSON object per row.
func WriteNDJSON(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range t.Records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
