// Package render writes DisplayComponents as aligned text or single-line JSON.
package render

import (
	"fmt"
	"io"

	"github.com/kula-app/urlparse/internal/components"
)

// Format selects the output form.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Render writes c to w in the given format.
func Render(w io.Writer, c components.DisplayComponents, format Format) error {
	switch format {
	case FormatText:
		return Text(w, c)
	case FormatJSON:
		return JSON(w, c)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
