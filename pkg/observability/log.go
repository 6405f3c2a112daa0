package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline, cache and HTTP events to a charmbracelet logger
// at debug level; failures are logged as warnings.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through l, or log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnGenerateStart(_ context.Context, vertices, edges int, seed uint64) {
	h.logger.Debug("generate start", "vertices", vertices, "edges", edges, "seed", seed)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, edgeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("generate failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("generate done", "edges", edgeCount, "duration", d)
}

func (h *LogHooks) OnFindStart(_ context.Context, vertices, edges int) {
	h.logger.Debug("find start", "vertices", vertices, "edges", edges)
}

func (h *LogHooks) OnFindComplete(_ context.Context, outcome string, length int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("find failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("find done", "outcome", outcome, "length", length, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path, requestID string) {
	h.logger.Debug("request", "method", method, "path", path, "id", requestID)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path, requestID string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "id", requestID, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
