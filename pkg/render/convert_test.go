package render

import (
	"context"
	"testing"

	"github.com/matzehuels/dotpath/pkg/errors"
)

func TestConverterMissingBinary(t *testing.T) {
	c := Converter{Binary: "dotpath-test-no-such-converter"}
	if c.Available() {
		t.Fatal("Available() = true for a missing binary")
	}

	_, err := c.PNG(context.Background(), []byte("<svg/>"), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("PNG() error = %v, want UNSUPPORTED", err)
	}
	_, err = c.PDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("PDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestConverterPNG(t *testing.T) {
	if !HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`
	data, err := ToPNG(context.Background(), []byte(svg), 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("output is not a PNG")
	}
}
