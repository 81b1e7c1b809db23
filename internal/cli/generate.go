package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/config"
	"github.com/matzehuels/dotpath/pkg/scene"
)

// generateCommand creates the generate command, which builds a scene and
// saves it as JSON.
func (c *CLI) generateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a scene and save it as JSON",
		Long: `Generate a scene and save it as JSON.

Dots are placed uniformly at random, every dot gets at least one line, and the
remaining lines join random pairs. The force-directed layout then runs for the
configured number of iterations. The scene file records the seed, so the same
scene can be rebuilt with --seed.

The saved scene can be passed to 'path', 'render', 'explore' and 'serve' with
--scene.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			result, err := c.build(cmd.Context(), cmd.ErrOrStderr(), cfg.PipelineOptions())
			if err != nil {
				return err
			}
			if err := scene.Save(result.Scene, output); err != nil {
				return fmt.Errorf("write scene %s: %w", output, err)
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Scene generated")
			printFile(w, output)
			printStats(w, result.Stats, result.Seed)
			printNextStep(w, "Find a path", fmt.Sprintf("%s path 1 %d --scene %s", appName, result.Stats.NodeCount, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultSceneFile, "scene file to write")
	config.RegisterGraphFlags(cmd.Flags())

	return cmd
}
