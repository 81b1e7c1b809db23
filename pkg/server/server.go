// Package server serves dotpath scenes over HTTP.
//
// The server holds one current scene. Browsers load the page at "/", which
// draws the scene as SVG and lets the user click two dots; the page then asks
// /api/path for the shortest route and redraws it in red. The same scene can
// be fetched as JSON or rendered in any [render.Format], and a POST to
// /api/scene replaces it with a freshly generated one.
//
// # Routes
//
//	GET  /                  interactive page
//	GET  /healthz           liveness and build information
//	GET  /api/scene         current scene as JSON
//	POST /api/scene         regenerate; body is a partial pipeline.Options
//	GET  /api/path          ?from=A&to=B shortest path query
//	GET  /render/{format}   ?from&to&labels&animate rendered scene
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with a
// status derived from the error code.
//
// [render.Format]: github.com/matzehuels/dotpath/pkg/render.Format
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dotpath/pkg/cache"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/scene"
)

// ShutdownTimeout bounds how long ListenAndServe waits for in-flight
// requests after its context is cancelled.
const ShutdownTimeout = 5 * time.Second

// RegenerateTimeout bounds how long POST /api/scene may spend building a
// scene before it answers 503.
const RegenerateTimeout = 30 * time.Second

// Server owns the current scene and the HTTP handler that exposes it.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
	cache  cache.Cache
	// regenTimeout bounds scene builds requested over HTTP.
	regenTimeout time.Duration

	mu    sync.RWMutex
	base  pipeline.Options
	scene *scene.Scene
	graph *graph.Graph
	gen   uint64 // bumped on every scene swap; part of render cache keys
}

// Option configures a Server.
type Option func(*Server)

// WithCache stores rendered output in c. The default is a
// [cache.MemoryCache] of [cache.DefaultMaxEntries] entries.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithRegenerateTimeout replaces [RegenerateTimeout]. Non-positive values
// are ignored.
func WithRegenerateTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.regenTimeout = d
		}
	}
}

// New creates a server without a scene. Call [Server.Regenerate] or
// [Server.SetScene] before serving. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, base pipeline.Options, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	s := &Server{
		runner: runner,
		logger: logger,
		base:   base,
		cache:  cache.NewMemoryCache(cache.DefaultMaxEntries),

		regenTimeout: RegenerateTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Options returns the options new scenes are generated from.
func (s *Server) Options() pipeline.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// SetOptions replaces the options new scenes are generated from. The current
// scene is left alone.
func (s *Server) SetOptions(opts pipeline.Options) {
	s.mu.Lock()
	s.base = opts
	s.mu.Unlock()
}

// Regenerate builds a new scene from opts and makes it current. On failure
// the previous scene stays in place.
func (s *Server) Regenerate(ctx context.Context, opts pipeline.Options) (*scene.Scene, error) {
	if opts.Logger == nil {
		opts.Logger = s.logger
	}
	result, err := s.runner.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.swap(result.Scene, result.Graph)
	return result.Scene, nil
}

// SetScene makes sc current. The scene is validated by rebuilding its graph.
func (s *Server) SetScene(sc *scene.Scene) error {
	g, err := sc.Graph()
	if err != nil {
		return err
	}
	s.swap(sc, g)
	return nil
}

func (s *Server) swap(sc *scene.Scene, g *graph.Graph) {
	s.mu.Lock()
	s.scene, s.graph = sc, g
	s.gen++
	s.mu.Unlock()
	s.logger.Debug("scene swapped", "id", sc.ID, "nodes", g.NodeCount(), "edges", g.EdgeCount())
}

// Current returns the current scene and its graph, or nils before the first
// scene is set. Callers must not modify either.
func (s *Server) Current() (*scene.Scene, *graph.Graph) {
	sc, g, _ := s.current()
	return sc, g
}

func (s *Server) current() (*scene.Scene, *graph.Graph, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scene, s.graph, s.gen
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return s.cache.Close()
}
