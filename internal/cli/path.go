package cli

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/config"
	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/server"
)

// pathCommand creates the path command, which prints the shortest path
// between two dots.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		sceneFile string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest path between two dots",
		Long: `Print the shortest path between two dots.

The path is the one with the fewest lines. Among equally short paths, the one
found first by a breadth-first search that visits neighbors in the order their
lines were drawn is reported. Dots in different components have no path, which
is reported but is not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseEndpoints(args[0], args[1])
			if err != nil {
				return err
			}
			_, g, err := c.sceneFor(cmd, sceneFile)
			if err != nil {
				return err
			}
			p, err := pipeline.NewRunner(c.Logger).FindPath(cmd.Context(), g, from, to)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(server.NewPathResponse(g, from, to, p))
			}

			if p == nil {
				printWarning(w, "%s (%d and %d)", server.NoPathMessage, from, to)
				printKeyValue(w, "reason", server.NoPathReason(g, from, to))
				return nil
			}
			printSuccess(w, "%s", formatPath(p))
			printKeyValue(w, "hops", strconv.Itoa(len(p)-1))
			return nil
		},
	}

	cmd.Flags().StringVar(&sceneFile, "scene", "", "scene file (default: generate from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	config.RegisterGraphFlags(cmd.Flags())

	return cmd
}

// parseEndpoints parses two node ids given on the command line.
func parseEndpoints(a, b string) (int, int, error) {
	from, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidNodeID, "%q is not a node id", a)
	}
	to, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidNodeID, "%q is not a node id", b)
	}
	return from, to, nil
}
