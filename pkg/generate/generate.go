package generate

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/graph"
)

const (
	// MaxVertices bounds the vertex count accepted by [Generate].
	MaxVertices = 1 << 24

	// MaxEdges bounds the edge count accepted by [Generate], independent of
	// the capacity of the requested vertex count.
	MaxEdges = 1 << 26

	// seenHint caps the initial size of the duplicate-pair set.
	seenHint = 1 << 16
)

var (
	// ErrInvalidOptions is returned for non-positive vertex counts, negative
	// edge counts or vertex counts above [MaxVertices].
	ErrInvalidOptions = errors.New("invalid generator options")

	// ErrTooManyEdges is returned when the requested edge count exceeds what
	// the ring plus distinct non-loop edges can reach.
	ErrTooManyEdges = errors.New("edge count exceeds graph capacity")
)

// Options controls graph generation.
type Options struct {
	Vertices int    // number of vertices, > 0
	Edges    int    // target edge count, >= 0; values below Vertices leave only the ring
	Seed     uint64 // PRNG seed
	Balance  bool   // join odd-degree vertices pairwise after the random phase
}

// Validate checks the option ranges and the edge capacity.
func (o Options) Validate() error {
	if o.Vertices <= 0 || o.Vertices > MaxVertices {
		return fmt.Errorf("%w: vertices must be in [1, %d], got %d", ErrInvalidOptions, MaxVertices, o.Vertices)
	}
	if o.Edges < 0 {
		return fmt.Errorf("%w: edges must be >= 0, got %d", ErrInvalidOptions, o.Edges)
	}
	if o.Edges > MaxEdges {
		return fmt.Errorf("%w: edges must be <= %d, got %d", ErrTooManyEdges, MaxEdges, o.Edges)
	}
	if c := Capacity(o.Vertices); int64(o.Edges) > c {
		return fmt.Errorf("%w: %d edges requested, at most %d possible with %d vertices",
			ErrTooManyEdges, o.Edges, c, o.Vertices)
	}
	return nil
}

// Capacity returns the largest edge count [Generate] can reach for v vertices.
//
// For v >= 3 the ring uses v distinct pairs, so every simple pair can be
// filled: v(v-1)/2. For v = 1 the ring is one self loop and for v = 2 it is
// a parallel pair; no further edge can be added in either case.
func Capacity(v int) int64 {
	if v < 3 {
		return int64(v)
	}
	n := int64(v)
	return n * (n - 1) / 2
}

// Generate builds a graph in two steps. First it links every vertex i to
// (i+1) mod V, a ring giving every vertex degree two. Then it draws vertex
// pairs from a PCG source seeded with opts.Seed, keeping those that are
// neither self loops nor already joined, until the graph has opts.Edges
// edges. The random phase makes odd degrees likely; set opts.Balance to add
// one edge per pair of odd vertices afterwards.
//
// Output is fully determined by opts.
func Generate(opts Options) (*graph.Graph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := opts.Vertices
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	seen := make(map[[2]int]struct{}, min(max(n, opts.Edges), seenHint))

	for i := range n {
		j := (i + 1) % n
		if err := g.AddEdge(i, j); err != nil {
			return nil, err
		}
		seen[pairKey(i, j)] = struct{}{}
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	for g.EdgeCount() < opts.Edges {
		u, v := rng.IntN(n), rng.IntN(n)
		if u == v {
			continue
		}
		k := pairKey(u, v)
		if _, dup := seen[k]; dup {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
		seen[k] = struct{}{}
	}

	if opts.Balance {
		if err := balance(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// balance pairs odd-degree vertices in ascending order and joins each pair.
// The ring keeps the graph connected, so the result always has an Eulerian
// circuit.
func balance(g *graph.Graph) error {
	odd := euler.OddVertices(g)
	for i := 0; i+1 < len(odd); i += 2 {
		if err := g.AddEdge(odd[i], odd[i+1]); err != nil {
			return fmt.Errorf("balance %d-%d: %w", odd[i], odd[i+1], err)
		}
	}
	return nil
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
