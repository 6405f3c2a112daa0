package euler

import (
	"errors"

	"github.com/matzehuels/eulertour/pkg/graph"
)

var (
	// ErrNotConnected is returned when two vertices with non-zero degree lie
	// in different components. No Eulerian circuit can exist.
	ErrNotConnected = errors.New("graph is not connected")

	// ErrOddDegree is returned when some vertex has an odd degree.
	// No Eulerian circuit can exist.
	ErrOddDegree = errors.New("graph has vertices with odd degree")
)

// IsNonExistence reports whether err means "no Eulerian circuit exists"
// rather than a failure.
func IsNonExistence(err error) bool {
	return errors.Is(err, ErrNotConnected) || errors.Is(err, ErrOddDegree)
}

// Outcome names the result of a circuit search.
type Outcome string

const (
	OutcomeCircuit      Outcome = "circuit"
	OutcomeNotConnected Outcome = "not-connected"
	OutcomeOddDegree    Outcome = "odd-degree"
)

// OutcomeOf maps the error from [Check] or [Find] to an Outcome. It returns
// "" for errors that are not non-existence results.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCircuit
	case errors.Is(err, ErrNotConnected):
		return OutcomeNotConnected
	case errors.Is(err, ErrOddDegree):
		return OutcomeOddDegree
	}
	return ""
}

// Message returns the console text for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeNotConnected:
		return "Graph is not connected. No Eulerian Circuit exists."
	case OutcomeOddDegree:
		return "Graph has vertices with odd degree. No Eulerian Circuit exists."
	case OutcomeCircuit:
		return "Eulerian Circuit exists."
	}
	return string(o)
}

// Check reports whether g admits an Eulerian circuit. Connectivity is
// checked before degree parity, so a graph failing both yields
// [ErrNotConnected]. Check never mutates g.
func Check(g *graph.Graph) error {
	if !IsConnected(g) {
		return ErrNotConnected
	}
	if !HasEvenDegree(g) {
		return ErrOddDegree
	}
	return nil
}

// IsConnected reports whether every vertex of non-zero degree is reachable
// from the first such vertex. An edgeless graph is connected.
//
// The traversal keeps its own stack, so its depth is bounded by memory
// rather than by goroutine stack growth.
func IsConnected(g *graph.Graph) bool {
	start := firstWithEdges(g)
	if start < 0 {
		return true
	}

	visited := make([]bool, g.Order())
	visited[start] = true
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.Neighbors(v) {
			if !visited[w] {
				visited[w] = true
				stack = append(stack, w)
			}
		}
	}

	for v := range g.Order() {
		if !visited[v] && g.Degree(v) > 0 {
			return false
		}
	}
	return true
}

// HasEvenDegree reports whether every vertex has an even number of neighbor entries.
func HasEvenDegree(g *graph.Graph) bool {
	for v := range g.Order() {
		if g.Degree(v)%2 != 0 {
			return false
		}
	}
	return true
}

// OddVertices returns the vertices of odd degree in ascending order.
func OddVertices(g *graph.Graph) []int {
	var odd []int
	for v := range g.Order() {
		if g.Degree(v)%2 != 0 {
			odd = append(odd, v)
		}
	}
	return odd
}

// firstWithEdges returns the lowest vertex with non-zero degree, or -1.
func firstWithEdges(g *graph.Graph) int {
	for v := range g.Order() {
		if g.Degree(v) > 0 {
			return v
		}
	}
	return -1
}
