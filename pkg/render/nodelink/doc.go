// Package nodelink renders graphs as Graphviz node-link diagrams.
//
// # Overview
//
// Unlike most Graphviz output, the diagram does not let Graphviz choose
// where nodes go. [ToDOT] writes every node with a pinned position
// (pos="x,y!") taken from the force layout, and [RenderSVG] runs the neato
// engine, which honours pinned positions and only routes the edges. The
// result looks like the direct SVG renderer but is drawn by Graphviz, which
// makes the DOT source useful for further processing with standard tools.
//
// Graphviz places the origin at the bottom left, so y coordinates are
// flipped against the canvas height.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: p})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [RenderPNG] rasterizes inside the Graphviz runtime and needs no external
// tools, which makes it the PNG fallback when librsvg is not installed.
package nodelink
