package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/config"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/render"
)

// exploreCommand creates the explore command, an interactive terminal view
// for picking two dots.
func (c *CLI) exploreCommand() *cobra.Command {
	var sceneFile, output string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Pick two dots interactively and see the path between them",
		Long: `Pick two dots interactively and see the path between them.

Move with the arrow keys or j/k, press enter on two dots, and the shortest
path is listed below the table. With --output, the last path found is
rendered to an SVG file on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sc, g, err := c.sceneFor(cmd, sceneFile)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(c.Logger)
			model := NewExploreModel(g, func(from, to int) ([]int, error) {
				return runner.FindPath(ctx, g, from, to)
			})

			final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run()
			if err != nil {
				return fmt.Errorf("explore: %w", err)
			}
			m, ok := final.(ExploreModel)
			if !ok || !m.Done() || output == "" {
				return nil
			}

			data, err := runner.Render(ctx, sc, render.FormatSVG, pipeline.RenderOptions{
				Path:     m.Path,
				Selected: []int{m.From, m.To},
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "Rendered path %d → %d", m.From, m.To)
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&sceneFile, "scene", "", "scene file (default: generate from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "render the last path to this SVG file on exit")
	config.RegisterGraphFlags(cmd.Flags())

	return cmd
}
