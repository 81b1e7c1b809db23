package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/layout"
	"github.com/matzehuels/dotpath/pkg/observability"
	"github.com/matzehuels/dotpath/pkg/render"
)

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func smallOptions(seed uint64) Options {
	opts := DefaultOptions()
	opts.Nodes = 20
	opts.Edges = 25
	opts.Iterations = 50
	opts.Seed = seed
	return opts
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Edges: 3}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if opts.Nodes != DefaultNodes {
		t.Errorf("Nodes should be %d, got %d", DefaultNodes, opts.Nodes)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("canvas should be %gx%g, got %gx%g", DefaultWidth, DefaultHeight, opts.Width, opts.Height)
	}
	if opts.Edges != 3 {
		t.Errorf("Edges must not be defaulted, got %d", opts.Edges)
	}
	if opts.Margin != 0 {
		t.Errorf("Margin must not be defaulted, got %g", opts.Margin)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative nodes", func(o *Options) { o.Nodes = -2 }},
		{"too many edges", func(o *Options) { o.Nodes = 4; o.Edges = 7 }},
		{"negative edges", func(o *Options) { o.Edges = -1 }},
		{"margin too wide", func(o *Options) { o.Margin = 400 }},
		{"negative spring", func(o *Options) { o.Spring = -1 }},
		{"too many nodes", func(o *Options) { o.Nodes = errors.MaxNodes + 1 }},
		{"too many iterations", func(o *Options) { o.Iterations = errors.MaxIterations + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.ValidateAndSetDefaults()
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("want INVALID_CONFIG, got %v", err)
			}
		})
	}

	opts := DefaultOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLayoutFillsDefaults(t *testing.T) {
	r := quietRunner()
	g, _, err := r.Generate(context.Background(), smallOptions(7))
	if err != nil {
		t.Fatal(err)
	}

	// Only the force constants are set; iterations and radius are zero.
	opts := Options{Repulsion: 20000, Spring: 0.01, RestLength: 100}
	stats, err := r.Layout(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if stats.Iterations != layout.DefaultIterations {
		t.Errorf("Iterations = %d, want %d", stats.Iterations, layout.DefaultIterations)
	}
}

func TestBuild(t *testing.T) {
	res, err := quietRunner().Build(context.Background(), smallOptions(42))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if res.Seed != 42 || res.Scene.Seed != 42 {
		t.Errorf("seed = %d / scene seed = %d, want 42", res.Seed, res.Scene.Seed)
	}
	if res.Stats.NodeCount != 20 || res.Stats.EdgeCount != 25 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.Stats.Iterations != 50 {
		t.Errorf("Iterations = %d, want 50", res.Stats.Iterations)
	}
	if res.Stats.Components < 1 {
		t.Errorf("Components = %d", res.Stats.Components)
	}
	if err := res.Graph.Validate(); err != nil {
		t.Errorf("graph invalid: %v", err)
	}
	area := res.Graph.Area()
	for _, n := range res.Graph.Nodes() {
		if !area.Contains(n.Pos) {
			t.Errorf("node %d at %v outside canvas", n.ID, n.Pos)
		}
	}
	if len(res.Scene.Nodes) != 20 || len(res.Scene.Edges) != 25 {
		t.Errorf("scene has %d nodes, %d edges", len(res.Scene.Nodes), len(res.Scene.Edges))
	}
}

func TestBuildDeterministic(t *testing.T) {
	r := quietRunner()
	a, err := r.Build(context.Background(), smallOptions(9))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Build(context.Background(), smallOptions(9))
	if err != nil {
		t.Fatal(err)
	}

	b.Scene.ID = a.Scene.ID
	ja, _ := json.Marshal(a.Scene)
	jb, _ := json.Marshal(b.Scene)
	if !bytes.Equal(ja, jb) {
		t.Error("the same seed should produce the same scene")
	}
}

func TestBuildRandomSeed(t *testing.T) {
	res, err := quietRunner().Build(context.Background(), smallOptions(0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Seed == 0 {
		t.Error("a zero seed should be replaced by a random one")
	}
}

func TestBuildLogs(t *testing.T) {
	var buf bytes.Buffer
	opts := smallOptions(1)
	opts.Logger = log.NewWithOptions(&buf, log.Options{})
	if _, err := quietRunner().Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"generated graph", "computed layout", "seed=1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestBuildInvalid(t *testing.T) {
	opts := smallOptions(1)
	opts.Edges = 1000
	_, err := quietRunner().Build(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("want INVALID_CONFIG, got %v", err)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quietRunner().Build(ctx, smallOptions(1))
	if err == nil || !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("want cancellation error, got %v", err)
	}
}

func TestFindPath(t *testing.T) {
	r := quietRunner()
	res, err := r.Build(context.Background(), smallOptions(3))
	if err != nil {
		t.Fatal(err)
	}

	hooks := &recordingHooks{}
	observability.SetPathHooks(hooks)
	defer observability.Reset()

	p, err := r.FindPath(context.Background(), res.Graph, 1, 1)
	if err != nil || len(p) != 1 {
		t.Errorf("FindPath(1, 1) = %v, %v", p, err)
	}
	if _, err := r.FindPath(context.Background(), res.Graph, 1, 99); !errors.Is(err, errors.ErrCodeInvalidNodeID) {
		t.Errorf("want INVALID_NODE_ID, got %v", err)
	}
	if hooks.queries != 2 {
		t.Errorf("path hook called %d times, want 2", hooks.queries)
	}
	if hooks.lastHops != -1 {
		t.Errorf("failed query should report -1 hops, got %d", hooks.lastHops)
	}
}

type recordingHooks struct {
	observability.NoopPathHooks
	queries  int
	lastHops int
}

func (h *recordingHooks) OnPathQuery(_ context.Context, _, _, hops int, _ time.Duration, _ error) {
	h.queries++
	h.lastHops = hops
}

func TestRender(t *testing.T) {
	r := quietRunner()
	res, err := r.Build(context.Background(), smallOptions(5))
	if err != nil {
		t.Fatal(err)
	}
	p, err := r.FindPath(context.Background(), res.Graph, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		format render.Format
		opts   RenderOptions
		want   string
	}{
		{render.FormatSVG, RenderOptions{Path: p}, "<svg"},
		{render.FormatSVG, RenderOptions{Animate: true}, "animation-delay"},
		{render.FormatDOT, RenderOptions{Path: p, Labels: true}, "graph G {"},
		{render.FormatJSON, RenderOptions{}, `"nodes"`},
	}
	for _, tt := range tests {
		data, err := r.Render(context.Background(), res.Scene, tt.format, tt.opts)
		if err != nil {
			t.Errorf("Render(%s) error: %v", tt.format, err)
			continue
		}
		if !strings.Contains(string(data), tt.want) {
			t.Errorf("Render(%s) output missing %q", tt.format, tt.want)
		}
	}

	if _, err := r.Render(context.Background(), res.Scene, render.Format("gif"), RenderOptions{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("want INVALID_FORMAT, got %v", err)
	}
	if _, err := r.Render(context.Background(), res.Scene, render.FormatSVG, RenderOptions{Path: []int{1, 77}}); !errors.Is(err, errors.ErrCodeInvalidNodeID) {
		t.Errorf("want INVALID_NODE_ID, got %v", err)
	}
}

func TestRenderSelectsPathEnds(t *testing.T) {
	o := RenderOptions{Path: []int{4, 2, 9}}
	if got := o.selected(); len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Errorf("selected() = %v, want [4 9]", got)
	}
	o.Selected = []int{3}
	if got := o.selected(); len(got) != 1 || got[0] != 3 {
		t.Errorf("explicit selection should win, got %v", got)
	}
	if got := (RenderOptions{}).selected(); len(got) != 0 {
		t.Errorf("no path, no selection: got %v", got)
	}
}
