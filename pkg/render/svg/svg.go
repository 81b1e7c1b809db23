// Package svg renders a laid-out graph straight to SVG.
//
// Dots are white circles of radius 21 and edges are white 2px lines on a
// dark canvas. Lines on a highlighted path are red and selected dots are
// filled red. Every element carries data attributes naming its node ids, so
// a page script can wire up clicks without re-reading the scene.
//
// With [WithStagger], each dot fades in 20ms (by default) after the previous
// one, and once all dots are visible the lines follow in edge insertion
// order. The timing is pure CSS; the document is complete without it.
package svg

import (
	"bytes"
	"fmt"
	"time"

	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/path"
	"github.com/matzehuels/dotpath/pkg/render"
)

// DefaultStagger is the delay between consecutive elements when staggering.
const DefaultStagger = 20 * time.Millisecond

// lineLead is the pause between the last dot and the first line.
const lineLead = 100 * time.Millisecond

const animationCSS = `
    @keyframes appear { from { opacity: 0; } to { opacity: 1; } }
    @keyframes drawLine { from { stroke-dashoffset: 1; } to { stroke-dashoffset: 0; } }
    .dot { opacity: 0; animation: appear 0.3s ease-out forwards; }
    .line { stroke-dasharray: 1; stroke-dashoffset: 1; animation: drawLine 1s ease-out forwards; }`

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	path     []int
	selected map[int]bool
	stagger  time.Duration
	labels   bool
}

// WithPath highlights the edges of p in red.
func WithPath(p []int) Option { return func(r *renderer) { r.path = p } }

// WithSelected fills the given dots red.
func WithSelected(ids ...int) Option {
	return func(r *renderer) {
		for _, id := range ids {
			r.selected[id] = true
		}
	}
}

// WithStagger animates dots then lines with d between elements.
// A zero or negative d uses DefaultStagger.
func WithStagger(d time.Duration) Option {
	return func(r *renderer) {
		if d <= 0 {
			d = DefaultStagger
		}
		r.stagger = d
	}
}

// WithLabels writes each node's id at its centre.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// Render draws g and returns the SVG document.
func Render(g *graph.Graph, opts ...Option) []byte {
	r := renderer{selected: make(map[int]bool)}
	for _, opt := range opts {
		opt(&r)
	}
	onPath := path.EdgeSet(r.path)
	area := g.Area()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		area.Width, area.Height, area.Width, area.Height)
	if r.stagger > 0 {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", animationCSS)
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", render.Background)

	nodes := g.Nodes()
	buf.WriteString(`  <g id="dots">` + "\n")
	for i, n := range nodes {
		fill := render.DotColor
		if r.selected[n.ID] {
			fill = render.PathColor
		}
		fmt.Fprintf(&buf, `    <circle class="dot" id="dot-%d" data-number="%d" cx="%.2f" cy="%.2f" r="%g" fill="%s"%s/>`+"\n",
			n.ID, n.ID, n.Pos.X, n.Pos.Y, render.DotRadius, fill, r.delay(time.Duration(i)*r.stagger))
		if r.labels {
			fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="14" fill="%s">%d</text>`+"\n",
				n.Pos.X, n.Pos.Y, render.Background, n.ID)
		}
	}
	buf.WriteString("  </g>\n")

	linesStart := time.Duration(len(nodes))*r.stagger + lineLead
	buf.WriteString(`  <g id="lines">` + "\n")
	for j, e := range g.Edges() {
		a, _ := g.Node(e.A)
		b, _ := g.Node(e.B)
		stroke := render.LineColor
		if onPath[e.Key()] {
			stroke = render.PathColor
		}
		fmt.Fprintf(&buf, `    <line class="line" data-node1="%d" data-node2="%d" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g" pathLength="1"%s/>`+"\n",
			e.A, e.B, a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, stroke, render.LineWidth, r.delay(linesStart+time.Duration(j)*r.stagger))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) delay(d time.Duration) string {
	if r.stagger <= 0 {
		return ""
	}
	return fmt.Sprintf(` style="animation-delay: %dms"`, d.Milliseconds())
}
