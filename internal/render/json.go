package render

import (
	"encoding/json"
	"io"

	"github.com/ppiankov/skyrecap/internal/recap"
)

// JSONFormatter writes the recap as indented JSON. The recap struct is
// its own wire format; the cache stores the same encoding.
type JSONFormatter struct{}

// NewJSON creates a JSON formatter.
func NewJSON() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the recap as JSON to w.
func (f *JSONFormatter) Format(w io.Writer, r *recap.Recap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
