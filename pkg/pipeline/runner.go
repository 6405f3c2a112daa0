package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/eulertour/pkg/cache"
	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/generate"
	"github.com/matzehuels/eulertour/pkg/graph"
	"github.com/matzehuels/eulertour/pkg/observability"
)

// Runner executes pipeline stages with caching.
//
// The Runner holds no per-run state, so one instance can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL applies to every entry the runner writes; zero means no expiry.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects [cache.DefaultKeyer] and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs generate → find → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.SetDefaults()

	genStart := time.Now()
	g, genHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	genTime := time.Since(genStart)

	r.Logger.Debug("generated graph",
		"vertices", g.Order(),
		"edges", g.EdgeCount(),
		"seed", opts.Seed,
		"duration", genTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.FindWithCacheInfo(ctx, g, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	result.Stats.GenerateTime = genTime
	result.CacheInfo.GraphHit = genHit

	if len(opts.Formats) == 0 {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, _, err := r.RenderWithCacheInfo(ctx, result, opts); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return result, nil
}

// GenerateWithCacheInfo builds the graph for opts and reports whether it
// came from the cache. Generation is deterministic, so cached graphs are
// identical to fresh ones.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*graph.Graph, bool, error) {
	key := r.Keyer.GraphKey(opts.GraphKeyOpts())

	if !opts.Refresh {
		if data, ok := r.cacheGet(ctx, "graph", key); ok {
			if g, err := graph.Unmarshal(data); err == nil {
				return g, true, nil
			}
		}
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Vertices, opts.Edges, opts.Seed)
	start := time.Now()

	g, err := generate.Generate(opts.GeneratorOptions())
	if err != nil {
		hooks.OnGenerateComplete(ctx, 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnGenerateComplete(ctx, g.EdgeCount(), time.Since(start), nil)

	if data, err := graph.Marshal(g); err == nil {
		r.cacheSet(ctx, "graph", key, data)
	}
	return g, false, nil
}

// Generate is GenerateWithCacheInfo without the cache hit flag.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Graph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, err
}

type circuitEntry struct {
	Outcome euler.Outcome `json:"outcome"`
	Circuit euler.Circuit `json:"circuit,omitempty"`
}

// usable reports whether a cached entry is consistent with g. A stored
// circuit must be a valid tour of g; a non-existence outcome must carry no
// circuit and match what [euler.Check] reports.
func (e circuitEntry) usable(g *graph.Graph) bool {
	switch e.Outcome {
	case euler.OutcomeCircuit:
		return e.Circuit.Verify(g) == nil
	case euler.OutcomeNotConnected, euler.OutcomeOddDegree:
		return len(e.Circuit) == 0 && euler.OutcomeOf(euler.Check(g)) == e.Outcome
	}
	return false
}

// FindWithCacheInfo decides whether g has an Eulerian circuit and finds
// one if so. The returned Result has no artifacts; pass it to
// [Runner.RenderWithCacheInfo] to add them.
func (r *Runner) FindWithCacheInfo(ctx context.Context, g *graph.Graph, refresh bool) (*Result, error) {
	data, err := graph.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	result := &Result{
		Graph:     g,
		GraphHash: cache.Hash(data),
		Artifacts: make(map[string][]byte),
		Stats: Stats{
			Vertices: g.Order(),
			Edges:    g.EdgeCount(),
		},
	}
	key := r.Keyer.CircuitKey(result.GraphHash)

	if !refresh {
		if data, ok := r.cacheGet(ctx, "circuit", key); ok {
			var entry circuitEntry
			if err := json.Unmarshal(data, &entry); err == nil && entry.usable(g) {
				result.Outcome = entry.Outcome
				result.Circuit = entry.Circuit
				result.CacheInfo.CircuitHit = true
				return result, nil
			}
			r.Logger.Warn("discarding unusable cached circuit", "graph", result.GraphHash)
		}
	}

	hooks := observability.Pipeline()
	hooks.OnFindStart(ctx, g.Order(), g.EdgeCount())
	start := time.Now()

	circuit, err := euler.Find(g)
	result.Stats.FindTime = time.Since(start)
	outcome := euler.OutcomeOf(err)
	if outcome == "" {
		hooks.OnFindComplete(ctx, "", 0, result.Stats.FindTime, err)
		return nil, err
	}
	hooks.OnFindComplete(ctx, string(outcome), circuit.Len(), result.Stats.FindTime, nil)

	result.Outcome = outcome
	result.Circuit = circuit

	r.Logger.Debug("searched circuit",
		"outcome", outcome,
		"length", circuit.Len(),
		"duration", result.Stats.FindTime)

	if data, err := json.Marshal(circuitEntry{Outcome: outcome, Circuit: circuit}); err == nil {
		r.cacheSet(ctx, "circuit", key, data)
	}
	return result, nil
}

// Find runs FindWithCacheInfo with cache reads enabled.
func (r *Runner) Find(ctx context.Context, g *graph.Graph) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return r.FindWithCacheInfo(ctx, g, false)
}

// RenderWithCacheInfo renders opts.Formats for result, storing them in
// result.Artifacts, and reports whether every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	opts.SetDefaults()
	if result.Artifacts == nil {
		result.Artifacts = make(map[string][]byte)
	}

	start := time.Now()
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.GraphHash, opts.artifactVariant(format))
		if !opts.Refresh {
			if data, ok := r.cacheGet(ctx, "artifact", key); ok {
				result.Artifacts[format] = data
				continue
			}
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		result.CacheInfo.RenderHit = true
		result.Stats.RenderTime = time.Since(start)
		return result.Artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	renderStart := time.Now()

	rendered, err := RenderArtifacts(ctx, result, missing, opts)
	hooks.OnRenderComplete(ctx, missing, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		result.Artifacts[format] = data
		r.cacheSet(ctx, "artifact", r.Keyer.ArtifactKey(result.GraphHash, opts.artifactVariant(format)), data)
	}
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result.Artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit flag.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, result, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheGet treats back-end failures as misses; the pipeline never fails
// because the cache did.
func (r *Runner) cacheGet(ctx context.Context, kind, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "type", kind, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return data, true
}

func (r *Runner) cacheSet(ctx context.Context, kind, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Debug("cache write failed", "type", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// artifactVariant folds the render settings that change an artifact's bytes
// into the format part of its cache key.
func (o *Options) artifactVariant(format string) string {
	return format + "|" + o.Engine + "|" + o.Title
}
