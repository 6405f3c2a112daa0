package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidVertexCount is returned by [New] when the vertex count is not positive.
	ErrInvalidVertexCount = errors.New("vertex count must be positive")

	// ErrVertexOutOfRange is returned when an edge endpoint is outside [0, V).
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrEdgeNotFound is returned by [Graph.RemoveEdge] when no edge joins the
	// two vertices.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrAsymmetric is returned by [Graph.Validate] when the adjacency lists
	// disagree about an edge's multiplicity.
	ErrAsymmetric = errors.New("adjacency lists are not symmetric")
)

// =============================================================================
// Edge
// =============================================================================

// Edge is an undirected edge between vertices U and V. U == V is a self loop.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.U == v {
		return e.V
	}
	return e.U
}

// Joins reports whether e connects u and v in either direction.
func (e Edge) Joins(u, v int) bool {
	return (e.U == u && e.V == v) || (e.U == v && e.V == u)
}

// IsLoop reports whether e is a self loop.
func (e Edge) IsLoop() bool { return e.U == e.V }

// =============================================================================
// Graph - Undirected Multigraph
// =============================================================================

// Graph is an undirected multigraph over the vertices 0..V-1.
//
// Each vertex keeps an ordered neighbor list. Adding edge (u,v) appends v to
// u's list and u to v's list; a self loop appends u to its own list twice,
// so it contributes two to the degree. Edges are also recorded in insertion
// order, which is what the wire format preserves.
//
// The vertex count is fixed at creation. The zero value is not usable.
// Graph is not safe for concurrent mutation.
type Graph struct {
	adj   [][]int
	edges []Edge
}

// New creates an edgeless graph with v vertices.
func New(v int) (*Graph, error) {
	if v <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexCount, v)
	}
	return &Graph{adj: make([][]int, v)}, nil
}

// MustNew is like [New] but panics on an invalid vertex count.
// Intended for tests and examples with constant sizes.
func MustNew(v int) *Graph {
	g, err := New(v)
	if err != nil {
		panic(err)
	}
	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of edges, counting parallel edges and loops once each.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns a copy of v's neighbor list in adjacency order.
// It returns nil for an out-of-range vertex.
func (g *Graph) Neighbors(v int) []int {
	if !g.valid(v) {
		return nil
	}
	return slices.Clone(g.adj[v])
}

// Degree returns the length of v's neighbor list, or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.valid(v) {
		return 0
	}
	return len(g.adj[v])
}

// AddEdge adds an undirected edge between u and v.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges = append(g.edges, Edge{U: u, V: v})
	return nil
}

// RemoveEdge removes one occurrence of the edge between u and v: the
// earliest-added one. Both neighbor lists lose one matching entry.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	i := slices.IndexFunc(g.edges, func(e Edge) bool { return e.Joins(u, v) })
	if i < 0 {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	g.edges = slices.Delete(g.edges, i, i+1)
	g.adj[u] = removeFirst(g.adj[u], v)
	g.adj[v] = removeFirst(g.adj[v], u)
	return nil
}

// HasEdge reports whether at least one edge joins u and v.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	return slices.Contains(g.adj[u], v)
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:   make([][]int, len(g.adj)),
		edges: slices.Clone(g.edges),
	}
	for i, nbrs := range g.adj {
		c.adj[i] = slices.Clone(nbrs)
	}
	return c
}

// Validate checks that every neighbor entry is in range and that u appears in
// v's list exactly as often as v appears in u's list.
func (g *Graph) Validate() error {
	counts := make(map[[2]int]int)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if !g.valid(v) {
				return fmt.Errorf("%w: %d in neighbors of %d", ErrVertexOutOfRange, v, u)
			}
			counts[[2]int{u, v}]++
		}
	}
	for k, n := range counts {
		if counts[[2]int{k[1], k[0]}] != n {
			return fmt.Errorf("%w: %d-%d", ErrAsymmetric, k[0], k[1])
		}
	}
	return nil
}

func (g *Graph) valid(v int) bool { return v >= 0 && v < len(g.adj) }

func (g *Graph) checkEndpoints(u, v int) error {
	if !g.valid(u) {
		return fmt.Errorf("%w: %d (V=%d)", ErrVertexOutOfRange, u, len(g.adj))
	}
	if !g.valid(v) {
		return fmt.Errorf("%w: %d (V=%d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	return nil
}

// removeFirst drops the first occurrence of x from s.
func removeFirst(s []int, x int) []int {
	if i := slices.Index(s, x); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}
