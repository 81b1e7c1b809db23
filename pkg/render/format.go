package render

import (
	"slices"
	"strings"

	"github.com/matzehuels/dotpath/pkg/errors"
)

// Format names an output format.
type Format string

const (
	FormatSVG      Format = "svg"      // direct SVG sink
	FormatDOT      Format = "dot"      // Graphviz source with pinned positions
	FormatGraphviz Format = "graphviz" // SVG drawn by Graphviz from the DOT source
	FormatPNG      Format = "png"      // direct SVG rasterised by rsvg-convert
	FormatPDF      Format = "pdf"      // direct SVG converted by rsvg-convert
	FormatJSON     Format = "json"     // scene JSON
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatSVG, FormatDOT, FormatGraphviz, FormatPNG, FormatPDF, FormatJSON}

// ParseFormat accepts a format name, case-insensitively.
// Returns an INVALID_FORMAT error for unknown names.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)", s, FormatNames())
	}
	return f, nil
}

// FormatNames returns the supported names joined by ", ".
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG, FormatGraphviz:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == FormatGraphviz {
		return "svg"
	}
	return string(f)
}

// Binary reports whether f is a binary format that should not be written
// to a terminal.
func (f Format) Binary() bool {
	return f == FormatPNG || f == FormatPDF
}

// Palette shared by the renderers.
const (
	Background = "#1e1e1e"
	DotColor   = "white"
	LineColor  = "white"
	PathColor  = "red"
	DotRadius  = 21.0
	LineWidth  = 2.0
)
