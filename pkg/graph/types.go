package graph

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/dotpath/pkg/errors"
)

// Area is the rectangular canvas nodes live on.
// Positions are kept within [Margin, Width-Margin] x [Margin, Height-Margin].
type Area struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// Validate checks that the area leaves room inside its margin.
func (a Area) Validate() error {
	return errors.ValidateArea(a.Width, a.Height, a.Margin)
}

// Clamp returns p moved onto the nearest point inside the margin-inset area.
func (a Area) Clamp(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: max(a.Margin, min(a.Width-a.Margin, p.X)),
		Y: max(a.Margin, min(a.Height-a.Margin, p.Y)),
	}
}

// Contains reports whether p lies inside the margin-inset area, edges included.
func (a Area) Contains(p r2.Vec) bool {
	return p.X >= a.Margin && p.X <= a.Width-a.Margin &&
		p.Y >= a.Margin && p.Y <= a.Height-a.Margin
}

// Node is a dot on the canvas.
//
// Vel is scratch state for the layout engine: the net displacement
// accumulated during one iteration. It is zero outside an iteration.
type Node struct {
	ID  int
	Pos r2.Vec
	Vel r2.Vec
}

// Edge is an undirected connection between two distinct nodes.
// A is the node the edge was added from; Edge{1, 2} and Edge{2, 1} are the
// same edge.
type Edge struct {
	A, B int
}

// Key returns the order-independent identity of the edge.
func (e Edge) Key() EdgeKey { return KeyOf(e.A, e.B) }

// Has reports whether id is one of the edge's endpoints.
func (e Edge) Has(id int) bool { return e.A == id || e.B == id }

// EdgeKey identifies an unordered pair of node ids, with Lo < Hi for
// distinct ids.
type EdgeKey struct {
	Lo, Hi int
}

// KeyOf returns the symmetric key for the pair {a, b}.
func KeyOf(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}
