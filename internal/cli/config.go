package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/config"
)

// configCommand creates the config command, which prints the effective
// configuration or writes a starter file.
func (c *CLI) configCommand() *cobra.Command {
	var (
		defaults bool
		initFile string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

Values are layered from built-in defaults, the config file, DOTPATH_*
environment variables (DOTPATH_GRAPH_NODES, DOTPATH_LAYOUT_REST_LENGTH, ...)
and flags. --defaults prints the built-in defaults only; --init writes them
to a new file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if initFile != "" {
				return writeDefaultConfig(cmd, initFile)
			}
			cfg := config.Default()
			if !defaults {
				var err error
				if cfg, err = c.loadConfig(cmd); err != nil {
					return err
				}
			}
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "print built-in defaults only")
	cmd.Flags().StringVar(&initFile, "init", "", "write the defaults to a new file")
	config.RegisterGraphFlags(cmd.Flags())
	config.RegisterServerFlags(cmd.Flags())

	return cmd
}

// writeDefaultConfig creates path with the default configuration. It refuses
// to overwrite an existing file.
func writeDefaultConfig(cmd *cobra.Command, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := config.Default().WriteTOML(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Wrote default configuration")
	printFile(cmd.OutOrStdout(), path)
	return nil
}
