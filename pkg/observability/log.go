package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug lines to a
// logger. Failures are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to log.Default() if nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) done(msg string, err error, kv ...any) {
	if err != nil {
		h.logger.Warn(msg, append(kv, "err", err)...)
		return
	}
	h.logger.Debug(msg, kv...)
}

func (h *LogHooks) OnGenerateStart(_ context.Context, nodes, edges int) {
	h.logger.Debug("generating graph", "nodes", nodes, "edges", edges)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, nodes, edges int, d time.Duration, err error) {
	h.done("generated graph", err, "nodes", nodes, "edges", edges, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, nodes, iterations int) {
	h.logger.Debug("running layout", "nodes", nodes, "iterations", iterations)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, iterations int, d time.Duration, err error) {
	h.done("layout finished", err, "iterations", iterations, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("rendering", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.done("rendered", err, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnPathQuery(_ context.Context, from, to, hops int, d time.Duration, err error) {
	h.done("path query", err, "from", from, "to", to, "hops", hops, "duration", d)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}
