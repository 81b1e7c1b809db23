// Package pkg holds the libraries behind dotpath.
//
// # Overview
//
// dotpath scatters numbered dots on a canvas, joins random pairs of them with
// lines, relaxes the picture with a force-directed layout, and answers the
// question "how do I get from dot A to dot B?" by highlighting the shortest
// route in red. The same scene can be explored in a terminal, served to a
// browser, or written out as SVG, DOT, PNG, PDF or JSON.
//
// # Architecture
//
//	pipeline.Options
//	       ↓
//	  [graph] random dots and edges (seeded)
//	       ↓
//	  [layout] spring and repulsion iterations
//	       ↓
//	  [scene] frozen positions, JSON on disk
//	       ↓
//	  [path] breadth-first shortest path
//	       ↓
//	  [render] SVG, DOT, PNG, PDF, JSON
//
// [pipeline] runs these steps for the CLI and the HTTP [server] alike.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(log.Default())
//	result, _ := runner.Build(ctx, pipeline.DefaultOptions())
//	p, _ := runner.FindPath(ctx, result.Graph, 1, 7)
//	svg, _ := runner.Render(ctx, result.Scene, render.FormatSVG,
//	    pipeline.RenderOptions{Path: p})
//
// # Main Packages
//
// [graph] - Undirected graph with positioned nodes, random generation and
// connected components.
//
// [layout] - Force-directed layout: springs along edges, repulsion between
// every pair, clamping to the canvas.
//
// [path] - Unweighted shortest paths over any adjacency.
//
// [scene] - The serialized form of a laid-out graph.
//
// [render] - Output formats, the shared palette and SVG conversion, with the
// [render/svg] and [render/nodelink] renderers.
//
// [pipeline] - Generate, lay out, query and render with observability hooks.
//
// [config] - Layered configuration from defaults, TOML, environment and
// flags.
//
// [server] - Interactive page and JSON API, with a render [cache].
//
// [observability] - Hook registries for pipeline, path and HTTP events.
//
// [errors] - Error codes shared by every package and mapped to HTTP statuses
// and exit codes.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/graph
// [layout]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/layout
// [path]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/path
// [scene]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/render/svg
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotpath/pkg/errors
package pkg
