package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dotpath/pkg/buildinfo"
	"github.com/matzehuels/dotpath/pkg/cache"
	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/observability"
	"github.com/matzehuels/dotpath/pkg/path"
	"github.com/matzehuels/dotpath/pkg/pipeline"
	"github.com/matzehuels/dotpath/pkg/render"
)

// maxBody caps POST /api/scene request bodies.
const maxBody = 1 << 16

// NoPathMessage is reported when the two chosen dots are not connected.
const NoPathMessage = "No path found between these two dots"

// PathResponse is the body of GET /api/path.
type PathResponse struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Found   bool   `json:"found"`
	Path    []int  `json:"path"`
	Hops    int    `json:"hops"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// NewPathResponse describes the result of a path query on g. Hops is -1 and
// Message and Reason are set when p is nil.
func NewPathResponse(g *graph.Graph, from, to int, p []int) PathResponse {
	resp := PathResponse{From: from, To: to, Path: p, Hops: -1}
	if p != nil {
		resp.Found = true
		resp.Hops = path.Hops(p)
	} else {
		resp.Message = NoPathMessage
		resp.Reason = NoPathReason(g, from, to)
	}
	return resp
}

// NoPathReason explains why from and to are not connected by naming the
// sizes of their components. It returns "" when both lie in the same one.
func NoPathReason(g *graph.Graph, from, to int) string {
	comps := g.Components()
	idx := graph.ComponentIndex(comps)
	a, okA := idx[from]
	b, okB := idx[to]
	if !okA || !okB || a == b {
		return ""
	}
	return fmt.Sprintf("dot %d is in a component of %s, dot %d in a component of %s",
		from, dotCount(len(comps[a])), to, dotCount(len(comps[b])))
}

func dotCount(n int) string {
	if n == 1 {
		return "1 dot"
	}
	return fmt.Sprintf("%d dots", n)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hooksMiddleware)

	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/scene", s.handleGetScene)
		r.Post("/scene", s.handlePostScene)
		r.Get("/path", s.handlePath)
	})
	r.Get("/render/{format}", s.handleRender)
	return r
}

// hooksMiddleware reports every request to the registered HTTP hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	sc, _ := s.Current()
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"scene":  sc != nil,
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleGetScene(w http.ResponseWriter, _ *http.Request) {
	sc, _ := s.Current()
	if sc == nil {
		s.respondError(w, errNoScene())
		return
	}
	respondJSON(w, http.StatusOK, sc)
}

// handlePostScene decodes a partial options object over the server's base
// options and regenerates. The seed is cleared first so an empty body gives
// a new random scene. The build is bounded by the regenerate timeout.
func (s *Server) handlePostScene(w http.ResponseWriter, r *http.Request) {
	opts := s.Options()
	opts.Seed = 0

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.regenTimeout)
	defer cancel()
	sc, err := s.Regenerate(ctx, opts)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sc)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	_, g := s.Current()
	if g == nil {
		s.respondError(w, errNoScene())
		return
	}
	from, err := intParam(r, "from")
	if err != nil {
		s.respondError(w, err)
		return
	}
	to, err := intParam(r, "to")
	if err != nil {
		s.respondError(w, err)
		return
	}

	p, err := s.runner.FindPath(r.Context(), g, from, to)
	if err != nil {
		s.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, NewPathResponse(g, from, to, p))
}

// handleRender draws the current scene. When both from and to are given the
// shortest path between them is highlighted; an unreachable pair still marks
// the two dots.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, g, gen := s.current()
	if sc == nil {
		s.respondError(w, errNoScene())
		return
	}
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	q := r.URL.Query()
	var opts pipeline.RenderOptions
	if opts.Labels, err = boolParam(r, "labels"); err != nil {
		s.respondError(w, err)
		return
	}
	if opts.Animate, err = boolParam(r, "animate"); err != nil {
		s.respondError(w, err)
		return
	}

	if q.Has("from") || q.Has("to") {
		from, err := intParam(r, "from")
		if err != nil {
			s.respondError(w, err)
			return
		}
		to, err := intParam(r, "to")
		if err != nil {
			s.respondError(w, err)
			return
		}
		p, err := s.runner.FindPath(r.Context(), g, from, to)
		if err != nil {
			s.respondError(w, err)
			return
		}
		opts.Path = p
		opts.Selected = []int{from, to}
	}

	key := cache.RenderKey(gen, cache.RenderKeyOpts{
		Format:  string(format),
		Path:    opts.Path,
		Marked:  opts.Selected,
		Labels:  opts.Labels,
		Animate: opts.Animate,
		Scale:   opts.Scale,
	})
	data, hit, err := s.cache.Get(r.Context(), key)
	if err != nil || !hit {
		data, err = s.runner.Render(r.Context(), sc, format, opts)
		if err != nil {
			s.respondError(w, err)
			return
		}
		if err := s.cache.Set(r.Context(), key, data, 0); err != nil {
			s.logger.Warn("render cache", "err", err)
		}
	}
	w.Header().Set("X-Cache", cacheStatus(hit))
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func errNoScene() error {
	return errors.New(errors.ErrCodeNotFound, "no scene loaded")
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "missing query parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidNodeID, "%s: %q is not a node id", name, raw)
	}
	return v, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a boolean", name, raw)
	}
	return v, nil
}

// statusOf maps an error code to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	case errors.Is(err, errors.ErrCodeTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// deadlineError gives an uncoded deadline error the TIMEOUT code.
func deadlineError(err error) error {
	if errors.GetCode(err) == "" && stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "request took too long, try fewer nodes or iterations")
	}
	return err
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	err = deadlineError(err)
	status := statusOf(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	respondJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: errors.UserMessage(err)}})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
