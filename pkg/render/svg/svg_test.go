package svg

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/dotpath/pkg/graph"
)

func chain(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewWithPositions(graph.Area{Width: 400, Height: 300, Margin: 20},
		[]r2.Vec{{X: 50, Y: 50}, {X: 150, Y: 60}, {X: 250, Y: 70}, {X: 350, Y: 80}})
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

type doc struct {
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Circles []circle `xml:"g>circle"`
	Lines   []line   `xml:"g>line"`
}

type circle struct {
	ID    string `xml:"data-number,attr"`
	Fill  string `xml:"fill,attr"`
	Style string `xml:"style,attr"`
}

type line struct {
	From   string `xml:"data-node1,attr"`
	To     string `xml:"data-node2,attr"`
	Stroke string `xml:"stroke,attr"`
	Style  string `xml:"style,attr"`
}

func parse(t *testing.T, data []byte) doc {
	t.Helper()
	var d doc
	if err := xml.Unmarshal(data, &d); err != nil {
		t.Fatalf("invalid SVG: %v\n%s", err, data)
	}
	return d
}

func TestRenderPlain(t *testing.T) {
	d := parse(t, Render(chain(t)))

	if d.Width != "400" || d.Height != "300" {
		t.Errorf("size = %sx%s, want 400x300", d.Width, d.Height)
	}
	if len(d.Circles) != 4 {
		t.Fatalf("got %d circles, want 4", len(d.Circles))
	}
	if len(d.Lines) != 4 {
		t.Fatalf("got %d lines, want one per edge (4)", len(d.Lines))
	}
	for _, c := range d.Circles {
		if c.Fill != "white" || c.Style != "" {
			t.Errorf("dot %s: fill=%q style=%q", c.ID, c.Fill, c.Style)
		}
	}
	for _, l := range d.Lines {
		if l.Stroke != "white" {
			t.Errorf("line %s-%s stroke = %q, want white", l.From, l.To, l.Stroke)
		}
	}
	if d.Lines[3].From != "4" || d.Lines[3].To != "1" {
		t.Errorf("lines must follow edge insertion order, last = %s-%s", d.Lines[3].From, d.Lines[3].To)
	}
}

func TestRenderPathAndSelection(t *testing.T) {
	d := parse(t, Render(chain(t), WithPath([]int{1, 4, 3}), WithSelected(1, 3)))

	red := map[string]bool{}
	for _, l := range d.Lines {
		if l.Stroke == "red" {
			red[l.From+"-"+l.To] = true
		}
	}
	if len(red) != 2 || !red["3-4"] || !red["4-1"] {
		t.Errorf("red lines = %v, want 3-4 and 4-1", red)
	}

	for _, c := range d.Circles {
		want := "white"
		if c.ID == "1" || c.ID == "3" {
			want = "red"
		}
		if c.Fill != want {
			t.Errorf("dot %s fill = %q, want %q", c.ID, c.Fill, want)
		}
	}
}

func TestRenderStagger(t *testing.T) {
	out := Render(chain(t), WithStagger(0))
	if !strings.Contains(string(out), "@keyframes drawLine") {
		t.Error("staggered output should carry the animation stylesheet")
	}

	d := parse(t, out)
	wantDots := []string{"0ms", "20ms", "40ms", "60ms"}
	for i, c := range d.Circles {
		if !strings.HasSuffix(c.Style, wantDots[i]) {
			t.Errorf("dot %d style = %q, want delay %s", i+1, c.Style, wantDots[i])
		}
	}
	// 4 dots * 20ms + 100ms lead.
	wantLines := []string{"180ms", "200ms", "220ms", "240ms"}
	for i, l := range d.Lines {
		if !strings.HasSuffix(l.Style, wantLines[i]) {
			t.Errorf("line %d style = %q, want delay %s", i, l.Style, wantLines[i])
		}
	}

	d = parse(t, Render(chain(t), WithStagger(50*time.Millisecond)))
	if !strings.HasSuffix(d.Circles[1].Style, "50ms") {
		t.Errorf("custom stagger not applied: %q", d.Circles[1].Style)
	}
}

func TestRenderLabels(t *testing.T) {
	out := string(Render(chain(t), WithLabels()))
	if strings.Count(out, "<text") != 4 {
		t.Errorf("want one label per dot:\n%s", out)
	}
	if !strings.Contains(out, `fill="#1e1e1e">3</text>`) {
		t.Errorf("label should use the background colour:\n%s", out)
	}
}
