package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/config"
	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	sceneFile string
	output    string
	format    string
	from, to  int
	labels    bool
	animate   bool
	scale     float64
}

// renderCommand creates the render command, which draws a scene with an
// optional highlighted path.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: string(render.FormatSVG), scale: 2}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a scene, optionally highlighting a path",
		Long: fmt.Sprintf(`Draw a scene, optionally highlighting a path.

Formats: %s.

svg is drawn directly, with the staggered appearance when --animate is set.
dot writes Graphviz source with pinned positions; graphviz renders that
source to SVG with the embedded Graphviz library. png and pdf convert the
direct SVG with rsvg-convert, which must be installed.

With --from and --to, the shortest path between the two dots is drawn in red.
Output goes to dotpath.<ext> unless --output is given; use -o - for stdout.`, render.FormatNames()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("from") != cmd.Flags().Changed("to") {
				return errors.New(errors.ErrCodeInvalidInput, "--from and --to must be given together")
			}
			return c.runRender(cmd, format, opts)
		},
	}

	cmd.Flags().StringVar(&opts.sceneFile, "scene", "", "scene file (default: generate from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: dotpath.<ext>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+render.FormatNames())
	cmd.Flags().IntVar(&opts.from, "from", 0, "first dot of the highlighted path")
	cmd.Flags().IntVar(&opts.to, "to", 0, "last dot of the highlighted path")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "write node ids on the dots")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "animate dots and lines (svg)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "resolution factor (png)")
	config.RegisterGraphFlags(cmd.Flags())

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, format render.Format, opts renderOpts) error {
	ctx := cmd.Context()
	sc, g, err := c.sceneFor(cmd, opts.sceneFile)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(c.Logger)
	ropts := pipeline.RenderOptions{Labels: opts.labels, Animate: opts.animate, Scale: opts.scale}
	if cmd.Flags().Changed("from") {
		p, err := runner.FindPath(ctx, g, opts.from, opts.to)
		if err != nil {
			return err
		}
		if p == nil {
			printWarning(cmd.ErrOrStderr(), "No path found between dots %d and %d", opts.from, opts.to)
		}
		ropts.Path = p
		ropts.Selected = []int{opts.from, opts.to}
	}

	data, err := runner.Render(ctx, sc, format, ropts)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	output := opts.output
	if output == "" {
		output = appName + "." + format.Ext()
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %s", format)
	printFile(w, output)
	return nil
}
