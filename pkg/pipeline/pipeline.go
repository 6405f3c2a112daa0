// Package pipeline runs the generate → find → render sequence shared by the
// CLI and the HTTP API.
//
// # Stages
//
//  1. Generate: build a seeded random graph (cached by generator options)
//  2. Find: check existence and run Hierholzer (cached by graph hash)
//  3. Render: produce the requested artifacts (cached by graph hash and format)
//
// A graph without an Eulerian circuit is a normal result: [Result.Outcome]
// says why, and the run still renders artifacts so the failure can be seen.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Vertices: 6,
//	    Edges:    9,
//	    Seed:     42,
//	    Formats:  []string{"svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Message())
//
// Stages can also be run on their own; [Runner.Find] and [Runner.Render]
// accept graphs that were loaded from disk rather than generated.
package pipeline

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/eulertour/pkg/cache"
	apperrors "github.com/matzehuels/eulertour/pkg/errors"
	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/generate"
	"github.com/matzehuels/eulertour/pkg/graph"
	"github.com/matzehuels/eulertour/pkg/render"
)

// DefaultEngine is the Graphviz layout used when Options.Engine is empty.
const DefaultEngine = render.EngineCirco

// Options configures a pipeline run. It doubles as the JSON body of
// POST /v1/circuits.
type Options struct {
	// Generator options
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
	Seed     uint64 `json:"seed"`
	Balance  bool   `json:"balance,omitempty"`

	// Render options; no formats means no artifacts
	Formats []string `json:"formats,omitempty"`
	Engine  string   `json:"engine,omitempty"`
	Title   string   `json:"title,omitempty"`

	// Refresh bypasses cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Validate checks the generator and render options. Errors carry
// pkg/errors codes so callers can map them to exit codes or HTTP statuses.
func (o *Options) Validate() error {
	if err := apperrors.ValidateGenerator(o.Vertices, o.Edges, o.Seed); err != nil {
		return err
	}
	if err := o.GeneratorOptions().Validate(); err != nil {
		code := apperrors.ErrCodeInvalidVertices
		if errors.Is(err, generate.ErrTooManyEdges) {
			code = apperrors.ErrCodeInvalidEdges
		}
		return apperrors.Wrap(code, err, "cannot generate graph")
	}
	return o.ValidateForRender()
}

// ValidateForRender checks only the render options.
func (o *Options) ValidateForRender() error {
	if err := apperrors.ValidateFormats(o.Formats, render.Formats); err != nil {
		return err
	}
	if o.Engine != "" && !render.IsEngine(o.Engine) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown layout engine %q", o.Engine)
	}
	return nil
}

// SetDefaults fills the engine and logger. It never changes generator input.
func (o *Options) SetDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// GeneratorOptions converts o to [generate.Options].
func (o *Options) GeneratorOptions() generate.Options {
	return generate.Options{
		Vertices: o.Vertices,
		Edges:    o.Edges,
		Seed:     o.Seed,
		Balance:  o.Balance,
	}
}

// GraphKeyOpts returns the cache key options for the generated graph.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		Vertices: o.Vertices,
		Edges:    o.Edges,
		Seed:     o.Seed,
		Balance:  o.Balance,
	}
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Graph is the generated (or supplied) graph.
	Graph *graph.Graph

	// GraphHash is the content hash of the graph's JSON form.
	GraphHash string

	// Outcome says whether a circuit exists and, if not, why.
	Outcome euler.Outcome

	// Circuit is set only when Outcome is euler.OutcomeCircuit.
	Circuit euler.Circuit

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Message returns the line the CLI prints for this result.
func (r *Result) Message() string {
	if r.Outcome == euler.OutcomeCircuit {
		return "Eulerian Circuit: " + r.Circuit.String()
	}
	return r.Outcome.Message()
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Vertices     int
	Edges        int
	GenerateTime time.Duration
	FindTime     time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GraphHit   bool // generated graph came from cache
	CircuitHit bool // outcome and circuit came from cache
	RenderHit  bool // every artifact came from cache
}
