package euler

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/eulertour/pkg/graph"
)

// ErrInvalidCircuit is returned by [Circuit.Verify] when a sequence is not an
// Eulerian circuit of the given graph.
var ErrInvalidCircuit = errors.New("invalid eulerian circuit")

// Circuit is a closed walk given as the sequence of visited vertices.
// The first and last elements are the same vertex.
type Circuit []int

// Len returns the number of vertices in the walk (edges + 1).
func (c Circuit) Len() int { return len(c) }

// Start returns the first vertex of the walk, or -1 for an empty circuit.
func (c Circuit) Start() int {
	if len(c) == 0 {
		return -1
	}
	return c[0]
}

// String formats the walk as "v0 -> v1 -> ... -> v0".
func (c Circuit) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " -> ")
}

// Verify checks that c is a closed walk in g using every edge exactly once.
func (c Circuit) Verify(g *graph.Graph) error {
	if len(c) != g.EdgeCount()+1 {
		return fmt.Errorf("%w: %d vertices for %d edges", ErrInvalidCircuit, len(c), g.EdgeCount())
	}
	if c[0] != c[len(c)-1] {
		return fmt.Errorf("%w: starts at %d but ends at %d", ErrInvalidCircuit, c[0], c[len(c)-1])
	}

	remaining := make(map[[2]int]int)
	for _, e := range g.Edges() {
		remaining[edgeKey(e.U, e.V)]++
	}
	for i := 1; i < len(c); i++ {
		k := edgeKey(c[i-1], c[i])
		if remaining[k] == 0 {
			return fmt.Errorf("%w: step %d uses missing or spent edge %d-%d", ErrInvalidCircuit, i, c[i-1], c[i])
		}
		remaining[k]--
	}
	return nil
}

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// Find returns an Eulerian circuit of g using Hierholzer's algorithm.
//
// If no circuit exists the error is [ErrNotConnected] or [ErrOddDegree]
// (see [IsNonExistence]) and no traversal is performed. The walk starts at
// the lowest vertex with non-zero degree, or vertex 0 when g has no edges,
// and always leaves a vertex through its first unused edge in adjacency
// order. g is not modified.
//
// Runs in O(V+E) time and space.
func Find(g *graph.Graph) (Circuit, error) {
	if err := Check(g); err != nil {
		return nil, err
	}
	return walk(g), nil
}

// walk runs Hierholzer's algorithm. The caller guarantees the graph is
// connected with all degrees even.
func walk(g *graph.Graph) Circuit {
	r := newRemaining(g)

	start := firstWithEdges(g)
	if start < 0 {
		start = 0
	}

	out := make([]int, 0, g.EdgeCount()+1)
	path := []int{start}
	cur := start
	for len(path) > 0 {
		if next, ok := r.take(cur); ok {
			path = append(path, cur)
			cur = next
			continue
		}
		out = append(out, cur)
		cur = path[len(path)-1]
		path = path[:len(path)-1]
	}

	slices.Reverse(out)
	return Circuit(out)
}

// =============================================================================
// Remaining-edge multiset
// =============================================================================

// half is one side of an edge as seen from a vertex.
type half struct {
	to   int
	edge int
}

// remaining tracks unused edges during the walk. Every vertex has its
// incidence list in adjacency order and a cursor past the entries already
// known to be spent. Removing an edge flips one bit, and each cursor only
// moves forward, so all removals together cost O(V+E).
type remaining struct {
	inc    [][]half
	cursor []int
	used   []bool
}

func newRemaining(g *graph.Graph) *remaining {
	n := g.Order()
	edges := g.Edges()
	r := &remaining{
		inc:    make([][]half, n),
		cursor: make([]int, n),
		used:   make([]bool, len(edges)),
	}
	// Replaying edges in insertion order rebuilds each vertex's adjacency order.
	for id, e := range edges {
		r.inc[e.U] = append(r.inc[e.U], half{to: e.V, edge: id})
		r.inc[e.V] = append(r.inc[e.V], half{to: e.U, edge: id})
	}
	return r
}

// take removes the first unused edge at v and returns its other endpoint.
func (r *remaining) take(v int) (int, bool) {
	list := r.inc[v]
	for r.cursor[v] < len(list) {
		h := list[r.cursor[v]]
		r.cursor[v]++
		if !r.used[h.edge] {
			r.used[h.edge] = true
			return h.to, true
		}
	}
	return 0, false
}
