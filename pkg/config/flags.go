package config

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"nodes":       "graph.nodes",
	"edges":       "graph.edges",
	"seed":        "graph.seed",
	"width":       "canvas.width",
	"height":      "canvas.height",
	"margin":      "canvas.margin",
	"iterations":  "layout.iterations",
	"repulsion":   "layout.repulsion",
	"radius":      "layout.radius",
	"spring":      "layout.spring",
	"rest-length": "layout.rest_length",
	"addr":        "server.addr",
}

// RegisterGraphFlags adds the generation, canvas and layout flags to fs.
// Flag defaults mirror Default, but only flags the user sets take effect.
func RegisterGraphFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("nodes", d.Graph.Nodes, "number of dots")
	fs.Int("edges", d.Graph.Edges, "number of lines")
	fs.Uint64("seed", d.Graph.Seed, "random seed (0 picks one)")
	fs.Float64("width", d.Canvas.Width, "canvas width")
	fs.Float64("height", d.Canvas.Height, "canvas height")
	fs.Float64("margin", d.Canvas.Margin, "distance kept from the canvas border")
	fs.Int("iterations", d.Layout.Iterations, "layout iterations")
	fs.Float64("repulsion", d.Layout.Repulsion, "repulsion constant")
	fs.Float64("radius", d.Layout.Radius, "repulsion cutoff distance")
	fs.Float64("spring", d.Layout.Spring, "spring constant")
	fs.Float64("rest-length", d.Layout.RestLength, "spring rest length")
}

// RegisterServerFlags adds the HTTP server flags to fs.
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.String("addr", DefaultAddr, "listen address")
}

// flagKey returns a posflag callback that renames known flags to their
// configuration keys and drops every other flag.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := FlagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}
