package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/observability"
	"github.com/matzehuels/dotpath/pkg/render"
	"github.com/matzehuels/dotpath/pkg/render/nodelink"
	"github.com/matzehuels/dotpath/pkg/render/svg"
	"github.com/matzehuels/dotpath/pkg/scene"
)

// RenderOptions controls how a scene is drawn.
type RenderOptions struct {
	// Path is highlighted in red.
	Path []int

	// Selected dots are filled red. When empty and Path is set, the path's
	// endpoints are selected.
	Selected []int

	// Labels writes node ids on the dots.
	Labels bool

	// Animate adds the staggered appearance to direct SVG output.
	Animate bool

	// Scale is the PNG resolution factor. Zero means 2.
	Scale float64
}

func (o RenderOptions) selected() []int {
	if len(o.Selected) > 0 || len(o.Path) == 0 {
		return o.Selected
	}
	return []int{o.Path[0], o.Path[len(o.Path)-1]}
}

// Render draws s in the given format.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, format render.Format, opts RenderOptions) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(format))
	start := time.Now()

	data, err := renderScene(ctx, s, format, opts)
	hooks.OnRenderComplete(ctx, string(format), len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func renderScene(ctx context.Context, s *scene.Scene, format render.Format, opts RenderOptions) ([]byte, error) {
	if format == render.FormatJSON {
		var buf bytes.Buffer
		if err := scene.Write(s, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	g, err := s.Graph()
	if err != nil {
		return nil, err
	}
	for _, id := range opts.Path {
		if !g.HasNode(id) {
			return nil, errors.New(errors.ErrCodeInvalidNodeID, "path node %d is not in the scene", id)
		}
	}

	svgOpts := []svg.Option{svg.WithPath(opts.Path), svg.WithSelected(opts.selected()...)}
	if opts.Labels {
		svgOpts = append(svgOpts, svg.WithLabels())
	}
	dotOpts := nodelink.Options{Path: opts.Path, Selected: opts.selected(), Labels: opts.Labels}
	scale := opts.Scale
	if scale == 0 {
		scale = 2
	}

	switch format {
	case render.FormatSVG:
		if opts.Animate {
			svgOpts = append(svgOpts, svg.WithStagger(svg.DefaultStagger))
		}
		return svg.Render(g, svgOpts...), nil
	case render.FormatDOT:
		return []byte(nodelink.ToDOT(g, dotOpts)), nil
	case render.FormatGraphviz:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(g, dotOpts))
	case render.FormatPNG:
		if !render.HasConverter() {
			return nodelink.RenderPNG(ctx, nodelink.ToDOT(g, dotOpts), scale)
		}
		return render.ToPNG(ctx, svg.Render(g, svgOpts...), scale)
	case render.FormatPDF:
		return render.ToPDF(ctx, svg.Render(g, svgOpts...))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}
