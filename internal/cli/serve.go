package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotpath/pkg/cache"
	"github.com/matzehuels/dotpath/pkg/config"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/scene"
	"github.com/matzehuels/dotpath/pkg/server"
)

// serveCommand creates the serve command, which serves the interactive page.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		sceneFile string
		watch     bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive page over HTTP",
		Long: `Serve the interactive page over HTTP.

Open the printed address in a browser and click two dots to see the shortest
path between them. The JSON API is described in the server package:
/api/scene, /api/path?from=A&to=B and /render/{format}.

With --watch, the scene is regenerated whenever the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(c.Logger)
			var opts []server.Option
			if noCache {
				opts = append(opts, server.WithCache(cache.NewNullCache()))
			}
			srv := server.New(runner, c.Logger, cfg.PipelineOptions(), opts...)
			if err := c.initialScene(ctx, srv, sceneFile); err != nil {
				return err
			}

			if watch {
				go c.watchConfig(ctx, cmd, srv)
			}

			printSuccess(cmd.OutOrStdout(), "Serving on http://%s", cfg.Server.Addr)
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&sceneFile, "scene", "", "scene file to serve (default: generate from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when the config file changes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render every request instead of caching output")
	config.RegisterGraphFlags(cmd.Flags())
	config.RegisterServerFlags(cmd.Flags())

	return cmd
}

func (c *CLI) initialScene(ctx context.Context, srv *server.Server, sceneFile string) error {
	prog := newProgress(c.Logger)
	if sceneFile != "" {
		sc, err := scene.Load(sceneFile)
		if err != nil {
			return err
		}
		if err := srv.SetScene(sc); err != nil {
			return err
		}
		prog.done("scene loaded", "file", sceneFile, "nodes", len(sc.Nodes))
		return nil
	}
	sc, err := srv.Regenerate(ctx, srv.Options())
	if err != nil {
		return err
	}
	prog.done("scene generated", "nodes", len(sc.Nodes), "seed", sc.Seed)
	return nil
}

// watchConfig regenerates the served scene each time the config file
// changes, until ctx is done. Invalid configurations are logged and skipped.
func (c *CLI) watchConfig(ctx context.Context, cmd *cobra.Command, srv *server.Server) {
	if _, err := os.Stat(c.configFile); err != nil {
		c.Logger.Warn("not watching config", "file", c.configFile, "err", err)
		return
	}
	c.Logger.Info("watching config", "file", c.configFile)

	err := config.Watch(ctx, c.configFile, func() {
		prog := newProgress(c.Logger)
		cfg, err := c.loadConfig(cmd)
		if err != nil {
			c.Logger.Error("config reload failed", "err", err)
			return
		}
		srv.SetOptions(cfg.PipelineOptions())
		sc, err := srv.Regenerate(ctx, cfg.PipelineOptions())
		if err != nil {
			c.Logger.Error("regenerate failed", "err", err)
			return
		}
		prog.done("scene reloaded", "nodes", len(sc.Nodes), "seed", sc.Seed)
	})
	if err != nil {
		c.Logger.Error("config watch stopped", "err", err)
	}
}
