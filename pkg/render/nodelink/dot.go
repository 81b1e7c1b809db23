package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/path"
	"github.com/matzehuels/dotpath/pkg/render"
)

// pointsPerInch converts DOT sizes, which are in inches, to canvas units.
const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Path is drawn with red edges.
	Path []int

	// Selected nodes are filled red.
	Selected []int

	// Labels writes node ids inside the dots. When false the dots are blank.
	Labels bool
}

// ToDOT converts g to Graphviz DOT with every node pinned at its position.
// Edges appear once each, in insertion order.
func ToDOT(g *graph.Graph, opts Options) string {
	area := g.Area()
	onPath := path.EdgeSet(opts.Path)
	selected := make(map[int]bool, len(opts.Selected))
	for _, id := range opts.Selected {
		selected[id] = true
	}
	diameter := 2 * render.DotRadius / pointsPerInch

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", render.Background)
	fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", num(area.Width), num(area.Height))
	buf.WriteString("  splines=false;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, width=%s, color=%q, fillcolor=%q, fontcolor=%q, fontsize=14];\n",
		num(diameter), render.DotColor, render.DotColor, render.Background)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=%s];\n", render.LineColor, num(render.LineWidth))
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{
			fmt.Sprintf("pos=\"%s,%s!\"", num(n.Pos.X), num(area.Height-n.Pos.Y)),
			fmt.Sprintf("label=%q", fmtLabel(n.ID, opts.Labels)),
		}
		if selected[n.ID] {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", render.PathColor), fmt.Sprintf("color=%q", render.PathColor))
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if onPath[e.Key()] {
			fmt.Fprintf(&buf, "  %d -- %d [color=%q];\n", e.A, e.B, render.PathColor)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id int, labels bool) string {
	if !labels {
		return ""
	}
	return strconv.Itoa(id)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG lays out a DOT graph with neato and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := layoutAndRender(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG lays out a DOT graph with neato and rasterizes it in-process.
// A scale of 1 draws one pixel per canvas unit; zero or less means 1.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	dpi := fmt.Sprintf("graph G {\n  dpi=%s;\n", num(pointsPerInch*scale))
	return layoutAndRender(ctx, strings.Replace(dot, "graph G {\n", dpi, 1), graphviz.PNG)
}

func layoutAndRender(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("graphviz %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg element, which sizes the drawing
// in points, with one sized in pixels over the same view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
