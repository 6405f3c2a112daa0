package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/graph"
)

func TestGenerateRingOnly(t *testing.T) {
	g, err := Generate(Options{Vertices: 4, Edges: 0, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}, g.Edges())

	c, err := euler.Find(g)
	require.NoError(t, err)
	assert.Equal(t, "0 -> 1 -> 2 -> 3 -> 0", c.String())
}

func TestGenerateSmallRings(t *testing.T) {
	tests := []struct {
		name     string
		vertices int
		want     []graph.Edge
	}{
		{"single vertex loop", 1, []graph.Edge{{U: 0, V: 0}}},
		{"two vertex parallel pair", 2, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(Options{Vertices: tt.vertices, Edges: tt.vertices, Seed: 3})
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Edges())
			_, err = euler.Find(g)
			assert.NoError(t, err)
		})
	}
}

func TestGenerateEdgeCount(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want int
	}{
		{"below ring size", Options{Vertices: 5, Edges: 2, Seed: 9}, 5},
		{"exact ring size", Options{Vertices: 5, Edges: 5, Seed: 9}, 5},
		{"random extras", Options{Vertices: 8, Edges: 15, Seed: 9}, 15},
		{"complete graph", Options{Vertices: 6, Edges: 15, Seed: 9}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.EdgeCount())
			assert.NoError(t, g.Validate())
			assert.True(t, euler.IsConnected(g))
		})
	}
}

func TestGenerateNoLoopsOrDuplicatesBeyondRing(t *testing.T) {
	g, err := Generate(Options{Vertices: 10, Edges: 30, Seed: 77})
	require.NoError(t, err)

	seen := map[[2]int]bool{}
	for _, e := range g.Edges() {
		assert.False(t, e.IsLoop(), "unexpected loop %v", e)
		k := pairKey(e.U, e.V)
		assert.False(t, seen[k], "duplicate edge %v", e)
		seen[k] = true
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Vertices: 12, Edges: 30, Seed: 2024}
	a, err := Generate(opts)
	require.NoError(t, err)
	b, err := Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	opts.Seed++
	c, err := Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), c.Edges())
}

func TestGenerateBalance(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g, err := Generate(Options{Vertices: 9, Edges: 20, Seed: seed, Balance: true})
		require.NoError(t, err)
		assert.True(t, euler.HasEvenDegree(g), "seed %d", seed)

		c, err := euler.Find(g)
		require.NoError(t, err, "seed %d", seed)
		assert.NoError(t, c.Verify(g))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"valid", Options{Vertices: 4, Edges: 6, Seed: 1}, nil},
		{"zero vertices", Options{Vertices: 0, Edges: 0, Seed: 1}, ErrInvalidOptions},
		{"too many vertices", Options{Vertices: MaxVertices + 1, Seed: 1}, ErrInvalidOptions},
		{"negative edges", Options{Vertices: 3, Edges: -1, Seed: 1}, ErrInvalidOptions},
		{"over capacity", Options{Vertices: 4, Edges: 7, Seed: 1}, ErrTooManyEdges},
		{"single vertex extra edge", Options{Vertices: 1, Edges: 2, Seed: 1}, ErrTooManyEdges},
		{"above edge limit", Options{Vertices: 100_000, Edges: 4_999_950_000, Seed: 1}, ErrTooManyEdges},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, int64(1), Capacity(1))
	assert.Equal(t, int64(2), Capacity(2))
	assert.Equal(t, int64(3), Capacity(3))
	assert.Equal(t, int64(45), Capacity(10))
}
