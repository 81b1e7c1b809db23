package render

import (
	"testing"

	"github.com/matzehuels/dotpath/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"SVG", FormatSVG, false},
		{" dot ", FormatDOT, false},
		{"graphviz", FormatGraphviz, false},
		{"png", FormatPNG, false},
		{"pdf", FormatPDF, false},
		{"json", FormatJSON, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %s, want INVALID_FORMAT", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMetadata(t *testing.T) {
	tests := []struct {
		f      Format
		ext    string
		mime   string
		binary bool
	}{
		{FormatSVG, "svg", "image/svg+xml", false},
		{FormatGraphviz, "svg", "image/svg+xml", false},
		{FormatDOT, "dot", "text/vnd.graphviz; charset=utf-8", false},
		{FormatPNG, "png", "image/png", true},
		{FormatPDF, "pdf", "application/pdf", true},
		{FormatJSON, "json", "application/json", false},
	}
	for _, tt := range tests {
		if got := tt.f.Ext(); got != tt.ext {
			t.Errorf("%s.Ext() = %q, want %q", tt.f, got, tt.ext)
		}
		if got := tt.f.ContentType(); got != tt.mime {
			t.Errorf("%s.ContentType() = %q, want %q", tt.f, got, tt.mime)
		}
		if got := tt.f.Binary(); got != tt.binary {
			t.Errorf("%s.Binary() = %v, want %v", tt.f, got, tt.binary)
		}
	}
}

func TestFormatNames(t *testing.T) {
	if got, want := FormatNames(), "svg, dot, graphviz, png, pdf, json"; got != want {
		t.Errorf("FormatNames() = %q, want %q", got, want)
	}
}
