// Package config loads dotpath settings from layered sources.
//
// Values are resolved in increasing priority:
//
//  1. Built-in defaults
//  2. A TOML file (dotpath.toml in the working directory unless another
//     path is given)
//  3. Environment variables prefixed DOTPATH_, where the first underscore
//     after the prefix separates section from key: DOTPATH_GRAPH_NODES sets
//     graph.nodes and DOTPATH_LAYOUT_REST_LENGTH sets layout.rest_length
//  4. Command-line flags that were explicitly set
//
// A file written by [Config.WriteTOML] can be loaded back unchanged.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	kToml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/layout"
	"github.com/matzehuels/dotpath/pkg/pipeline"
)

// DefaultFile is the config file read when no path is given.
const DefaultFile = "dotpath.toml"

// EnvPrefix prefixes every environment variable dotpath reads.
const EnvPrefix = "DOTPATH_"

// DefaultAddr is the address the HTTP server listens on.
const DefaultAddr = "localhost:8080"

// Config holds all configuration for the application.
type Config struct {
	Graph  GraphConfig  `koanf:"graph" toml:"graph"`
	Canvas CanvasConfig `koanf:"canvas" toml:"canvas"`
	Layout LayoutConfig `koanf:"layout" toml:"layout"`
	Server ServerConfig `koanf:"server" toml:"server"`
}

// GraphConfig controls graph generation.
type GraphConfig struct {
	Nodes int    `koanf:"nodes" toml:"nodes"`
	Edges int    `koanf:"edges" toml:"edges"`
	Seed  uint64 `koanf:"seed" toml:"seed"` // 0 picks a random seed
}

// CanvasConfig is the drawing area.
type CanvasConfig struct {
	Width  float64 `koanf:"width" toml:"width"`
	Height float64 `koanf:"height" toml:"height"`
	Margin float64 `koanf:"margin" toml:"margin"`
}

// LayoutConfig holds the force simulation parameters.
type LayoutConfig struct {
	Iterations int     `koanf:"iterations" toml:"iterations"`
	Repulsion  float64 `koanf:"repulsion" toml:"repulsion"`
	Radius     float64 `koanf:"radius" toml:"radius"`
	Spring     float64 `koanf:"spring" toml:"spring"`
	RestLength float64 `koanf:"rest_length" toml:"rest_length"`
}

// ServerConfig configures `dotpath serve`.
type ServerConfig struct {
	Addr string `koanf:"addr" toml:"addr"`
}

// Source says where to read configuration from.
type Source struct {
	// File is the TOML file to read. Empty means DefaultFile.
	File string

	// Required makes a missing file an error. A missing DefaultFile is
	// always ignored.
	Required bool

	// Flags are applied last; only flags that were set on the command line
	// override other sources. Flag names map to keys through FlagKeys.
	Flags *pflag.FlagSet
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			Nodes: pipeline.DefaultNodes,
			Edges: pipeline.DefaultEdges,
		},
		Canvas: CanvasConfig{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
			Margin: pipeline.DefaultMargin,
		},
		Layout: LayoutConfig{
			Iterations: layout.DefaultIterations,
			Repulsion:  layout.DefaultRepulsionConstant,
			Radius:     layout.DefaultRepulsionRadius,
			Spring:     layout.DefaultSpringConstant,
			RestLength: layout.DefaultRestLength,
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"graph": map[string]interface{}{
			"nodes": d.Graph.Nodes,
			"edges": d.Graph.Edges,
			"seed":  d.Graph.Seed,
		},
		"canvas": map[string]interface{}{
			"width":  d.Canvas.Width,
			"height": d.Canvas.Height,
			"margin": d.Canvas.Margin,
		},
		"layout": map[string]interface{}{
			"iterations":  d.Layout.Iterations,
			"repulsion":   d.Layout.Repulsion,
			"radius":      d.Layout.Radius,
			"spring":      d.Layout.Spring,
			"rest_length": d.Layout.RestLength,
		},
		"server": map[string]interface{}{
			"addr": d.Server.Addr,
		},
	}
}

// Load resolves configuration from defaults, file, environment and flags.
// Priority: Flags > Env > Config File > Defaults.
//
// The result is not validated; call [Config.Validate].
func Load(src Source) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(defaultMap()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path := src.File
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kToml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	} else if src.Required && src.File != "" {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if src.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(src.Flags, ".", k, flagKey(src.Flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode configuration")
	}
	return &cfg, nil
}

// envKey maps DOTPATH_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Validate checks that a scene can be built from the configuration.
// Returns an INVALID_CONFIG error.
func (c *Config) Validate() error {
	if err := errors.ValidateNodeCount(c.Graph.Nodes); err != nil {
		return err
	}
	if err := errors.ValidateEdgeTarget(c.Graph.Edges, graph.MaxEdges(c.Graph.Nodes)); err != nil {
		return err
	}
	if err := errors.ValidateIterations(c.Layout.Iterations); err != nil {
		return err
	}
	if err := errors.ValidateArea(c.Canvas.Width, c.Canvas.Height, c.Canvas.Margin); err != nil {
		return err
	}
	opts := c.PipelineOptions()
	if err := opts.LayoutOptions().Validate(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}

// PipelineOptions converts the configuration into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Nodes:      c.Graph.Nodes,
		Edges:      c.Graph.Edges,
		Seed:       c.Graph.Seed,
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Margin:     c.Canvas.Margin,
		Iterations: c.Layout.Iterations,
		Repulsion:  c.Layout.Repulsion,
		Radius:     c.Layout.Radius,
		Spring:     c.Layout.Spring,
		RestLength: c.Layout.RestLength,
	}
}

// WriteTOML encodes the configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
