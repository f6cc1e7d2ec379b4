// Package render formats a generated recap for humans (terminal) and
// machines (JSON). The card/image rendering lives elsewhere; these are
// the CLI's output formats.
package render

import (
	"io"

	"github.com/ppiankov/skyrecap/internal/recap"
)

// Formatter writes a formatted recap to w.
type Formatter interface {
	Format(w io.Writer, r *recap.Recap) error
}
