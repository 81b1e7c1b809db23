package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/dotpath/pkg/errors"
)

// DefaultConverterBinary is the librsvg command line tool.
const DefaultConverterBinary = "rsvg-convert"

// Converter turns SVG documents into PNG or PDF by piping them through an
// rsvg-convert compatible binary.
type Converter struct {
	// Binary is looked up on PATH. Empty means DefaultConverterBinary.
	Binary string
}

func (c Converter) binary() string {
	if c.Binary == "" {
		return DefaultConverterBinary
	}
	return c.Binary
}

// Available reports whether the converter binary can be found.
func (c Converter) Available() bool {
	_, err := exec.LookPath(c.binary())
	return err == nil
}

// PNG rasterizes svg. A scale of 2 doubles the canvas resolution; values
// below or equal to zero mean 1.
func (c Converter) PNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return c.run(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

// PDF converts svg to a single page PDF.
func (c Converter) PDF(ctx context.Context, svg []byte) ([]byte, error) {
	return c.run(ctx, svg, "pdf")
}

func (c Converter) run(ctx context.Context, svg []byte, format string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(c.binary())
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s output needs %s (librsvg): brew install librsvg or apt install librsvg2-bin", format, c.binary())
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s %s: %s", c.binary(), format, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// ToPNG rasterizes svg with the default converter.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return Converter{}.PNG(ctx, svg, scale)
}

// ToPDF converts svg with the default converter.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return Converter{}.PDF(ctx, svg)
}

// HasConverter reports whether the default converter is installed.
func HasConverter() bool {
	return Converter{}.Available()
}
