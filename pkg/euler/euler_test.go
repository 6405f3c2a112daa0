package euler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/eulertour/pkg/graph"
)

func build(t *testing.T, v int, edges ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(v)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestFindFourCycle(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	c, err := Find(g)
	require.NoError(t, err)
	assert.Equal(t, Circuit{0, 1, 2, 3, 0}, c)
	assert.Equal(t, "0 -> 1 -> 2 -> 3 -> 0", c.String())
	assert.NoError(t, c.Verify(g))
}

func TestFindCircuits(t *testing.T) {
	tests := []struct {
		name  string
		v     int
		edges [][2]int
		start int
	}{
		{"edgeless", 3, nil, 0},
		{"self loop", 1, [][2]int{{0, 0}}, 0},
		{"parallel pair", 2, [][2]int{{0, 1}, {0, 1}}, 0},
		{"isolated leading vertex", 4, [][2]int{{1, 2}, {2, 3}, {3, 1}}, 1},
		{"bowtie", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}, 0},
		{"loop on cycle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 1}}, 0},
		{"triple edge plus loop", 2, [][2]int{{0, 1}, {1, 0}, {1, 1}, {0, 1}, {0, 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.v, tt.edges...)
			c, err := Find(g)
			require.NoError(t, err)
			assert.Len(t, c, len(tt.edges)+1)
			assert.Equal(t, tt.start, c.Start())
			assert.Equal(t, c[0], c[len(c)-1])
			assert.NoError(t, c.Verify(g))
		})
	}
}

func TestFindFollowsAdjacencyOrder(t *testing.T) {
	// Two triangles sharing vertex 0. The first neighbor of 0 is 3, so the
	// walk enters the second triangle first.
	g := build(t, 5,
		[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
	)
	c, err := Find(g)
	require.NoError(t, err)
	assert.Equal(t, Circuit{0, 3, 4, 0, 1, 2, 0}, c)
}

func TestFindNonExistence(t *testing.T) {
	tests := []struct {
		name    string
		v       int
		edges   [][2]int
		wantErr error
	}{
		{"path has odd ends", 3, [][2]int{{0, 1}, {1, 2}}, ErrOddDegree},
		{"single edge", 2, [][2]int{{0, 1}}, ErrOddDegree},
		{"two triangles", 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}, ErrNotConnected},
		{"disconnected and odd reports connectivity", 4, [][2]int{{0, 1}, {2, 3}}, ErrNotConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.v, tt.edges...)
			c, err := Find(g)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsNonExistence(err))
			assert.Nil(t, c)
		})
	}
}

func TestFindDoesNotMutate(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	before := g.Clone()

	_, err := Find(g)
	require.NoError(t, err)

	assert.Equal(t, before.Edges(), g.Edges())
	for v := range g.Order() {
		assert.Equal(t, before.Neighbors(v), g.Neighbors(v))
	}
}

func TestChecksIdempotent(t *testing.T) {
	graphs := []*graph.Graph{
		build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}),
		build(t, 3, [2]int{0, 1}, [2]int{1, 2}),
		build(t, 4, [2]int{0, 1}, [2]int{0, 1}, [2]int{2, 3}, [2]int{2, 3}),
	}
	for _, g := range graphs {
		assert.Equal(t, IsConnected(g), IsConnected(g))
		assert.Equal(t, HasEvenDegree(g), HasEvenDegree(g))
		assert.Equal(t, Check(g), Check(g))
	}
}

func TestIsConnectedIgnoresIsolatedVertices(t *testing.T) {
	g := build(t, 6, [2]int{2, 4}, [2]int{4, 2})
	assert.True(t, IsConnected(g))
	assert.True(t, IsConnected(build(t, 3)))
}

func TestOddVertices(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 3})
	assert.Equal(t, []int{0, 2}, OddVertices(g))
	assert.Empty(t, OddVertices(build(t, 2, [2]int{0, 1}, [2]int{1, 0})))
}

func TestLargeRingDoesNotRecurse(t *testing.T) {
	const n = 200_000
	g := graph.MustNew(n)
	for i := range n {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	c, err := Find(g)
	require.NoError(t, err)
	assert.Len(t, c, n+1)
	assert.Equal(t, 1, c[1])
}

func TestRandomEvenGraphs(t *testing.T) {
	// Unions of random closed walks are connected with all degrees even.
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := range 50 {
		v := 2 + rng.IntN(12)
		g := graph.MustNew(v)
		cur := 0
		for range 1 + rng.IntN(20) {
			next := rng.IntN(v)
			require.NoError(t, g.AddEdge(cur, next))
			cur = next
		}
		require.NoError(t, g.AddEdge(cur, 0))

		c, err := Find(g)
		require.NoError(t, err, "trial %d", trial)
		assert.NoError(t, c.Verify(g), "trial %d", trial)
	}
}

func TestVerifyRejects(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	tests := []struct {
		name string
		c    Circuit
	}{
		{"too short", Circuit{0, 1, 0}},
		{"open walk", Circuit{0, 1, 2, 1}},
		{"repeated edge", Circuit{0, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.c.Verify(g), ErrInvalidCircuit)
		})
	}
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeCircuit, OutcomeOf(nil))
	assert.Equal(t, OutcomeNotConnected, OutcomeOf(ErrNotConnected))
	assert.Equal(t, OutcomeOddDegree, OutcomeOf(fmt.Errorf("wrapped: %w", ErrOddDegree)))
	assert.Equal(t, Outcome(""), OutcomeOf(errors.New("boom")))

	assert.Equal(t, "Graph is not connected. No Eulerian Circuit exists.", OutcomeNotConnected.Message())
	assert.Equal(t, "Graph has vertices with odd degree. No Eulerian Circuit exists.", OutcomeOddDegree.Message())
}
