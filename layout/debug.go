package layout

import (
	"encoding/json"
	"io"
)

// WriteDebugJSON dumps the laid-out result as indented JSON. Useful for
// diffing layout changes without opening the rendered PDF.
func WriteDebugJSON(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
