// Package cli implements the dotpath command-line interface.
//
// # Commands
//
//   - generate: build a scene and write it as JSON
//   - path: print the shortest path between two dots
//   - render: draw a scene as SVG, DOT, Graphviz SVG, PNG, PDF or JSON
//   - explore: pick two dots in an interactive terminal view
//   - serve: serve the interactive page over HTTP
//   - config: print the effective configuration as TOML
//   - completion: generate shell completion scripts
//
// Every command that builds a scene reads dotpath.toml, DOTPATH_* environment
// variables and its own flags, in increasing order of precedence. Commands
// that accept --scene use a saved scene instead of generating one.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes pipeline, path and HTTP events to the logger.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/buildinfo"
	"github.com/matzehuels/dotpath/pkg/config"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used in help text and file names.
	appName = "dotpath"

	// defaultSceneFile is where generate writes when no --output is given.
	defaultSceneFile = "scene.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. Debug level also installs the
// logging hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	installHooks(c.Logger, level <= log.DebugLevel)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dotpath finds shortest paths between dots on a random graph",
		Long: `Dotpath scatters dots on a canvas, links them with random lines, relaxes the
picture with a force-directed layout, and finds the shortest chain of lines
between any two dots you pick.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", config.DefaultFile, "config file")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// configSource describes where cmd reads its configuration from. The config
// file is required only when --config was given explicitly.
func (c *CLI) configSource(cmd *cobra.Command) config.Source {
	return config.Source{
		File:     c.configFile,
		Required: cmd.Flags().Changed("config"),
		Flags:    cmd.Flags(),
	}
}

// loadConfig loads and validates the layered configuration for cmd.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configSource(cmd))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "file", c.configFile, "nodes", cfg.Graph.Nodes, "edges", cfg.Graph.Edges, "seed", cfg.Graph.Seed)
	return cfg, nil
}

// =============================================================================
// Scene Helpers
// =============================================================================

// build generates and lays out a scene while showing a spinner on w.
func (c *CLI) build(ctx context.Context, w io.Writer, opts pipeline.Options) (*pipeline.Result, error) {
	spinner := newSpinner(ctx, w, "Generating...")
	spinner.Start()

	opts.Logger = c.Logger
	opts.OnIteration = func(i int, _ float64) {
		spinner.Update(fmt.Sprintf("Laying out %d/%d", i+1, opts.Iterations))
	}

	result, err := pipeline.NewRunner(c.Logger).Build(ctx, opts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return nil, err
	}
	spinner.Stop()
	return result, nil
}

// sceneFor returns the scene stored in file, or builds a new one from the
// command's configuration when file is empty.
func (c *CLI) sceneFor(cmd *cobra.Command, file string) (*scene.Scene, *graph.Graph, error) {
	if file != "" {
		sc, err := scene.Load(file)
		if err != nil {
			return nil, nil, err
		}
		g, err := sc.Graph()
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("loaded scene", "file", file, "id", sc.ID, "nodes", g.NodeCount())
		return sc, g, nil
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	result, err := c.build(cmd.Context(), cmd.ErrOrStderr(), cfg.PipelineOptions())
	if err != nil {
		return nil, nil, err
	}
	return result.Scene, result.Graph, nil
}
