// Package render turns a laid-out graph into images.
//
// # Overview
//
// This package holds what every renderer shares:
//
//   - The set of output [Format] names and [ParseFormat]
//   - Raster and print conversion of any SVG ([ToPNG], [ToPDF])
//   - The palette both renderers draw with
//
// Two renderers live in subpackages:
//
//   - [svg] writes the scene directly as SVG: white dots of radius 21 on a
//     dark canvas, white 2px lines, and the highlighted path in red. It can
//     emit CSS animation delays so browsers replay the dots appearing one by
//     one followed by the lines.
//   - [nodelink] writes Graphviz DOT with every node pinned at its layout
//     position and renders it with neato through go-graphviz.
//
// # Format Conversion
//
// A [Converter] pipes SVG through the external rsvg-convert tool from
// librsvg. [ToPDF] and [ToPNG] use the default one. When the tool is missing
// they fail with an UNSUPPORTED error.
//
//	data := svg.Render(g, svg.WithPath(p))
//	png, err := render.ToPNG(ctx, data, 2.0)
//
// [svg]: github.com/matzehuels/dotpath/pkg/render/svg
// [nodelink]: github.com/matzehuels/dotpath/pkg/render/nodelink
package render
