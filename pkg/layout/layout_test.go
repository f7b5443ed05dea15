package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
)

func pathGraph() ([]string, map[string][]string) {
	nodes := []string{"A", "B", "C", "D"}
	adj := map[string][]string{
		"A": {"B"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C"},
	}
	return nodes, adj
}

func TestGet(t *testing.T) {
	for _, alg := range All() {
		fn, err := Get(alg)
		require.NoError(t, err, "algorithm %q", alg)
		require.NotNil(t, fn)
	}

	_, err := Get("magnetic")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownLayout, errors.GetCode(err))
}

func TestAllIncludesDefault(t *testing.T) {
	assert.Contains(t, All(), Default)
	assert.Len(t, All(), 5)
}

func TestEveryAlgorithmPlacesEveryNode(t *testing.T) {
	nodes, adj := pathGraph()
	for _, alg := range All() {
		alg := alg
		t.Run(string(alg), func(t *testing.T) {
			fn, err := Get(alg)
			require.NoError(t, err)

			pos := fn(nodes, adj)
			require.Len(t, pos, len(nodes))
			for _, n := range nodes {
				p, ok := pos[n]
				require.True(t, ok, "node %q missing", n)
				assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "node %q at %v", n, p)
				assert.False(t, math.IsInf(p.X, 0) || math.IsInf(p.Y, 0), "node %q at %v", n, p)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	nodes, adj := pathGraph()
	for _, alg := range All() {
		alg := alg
		t.Run(string(alg), func(t *testing.T) {
			fn, err := Get(alg)
			require.NoError(t, err)

			first := fn(nodes, adj)
			second := fn(nodes, adj)
			for _, n := range nodes {
				assert.InDelta(t, first[n].X, second[n].X, 1e-12)
				assert.InDelta(t, first[n].Y, second[n].Y, 1e-12)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	nodes, adj := pathGraph()
	pos := circular(nodes, adj)
	for _, n := range nodes {
		assert.InDelta(t, 1.0, pos[n].Len(), 1e-9, "node %q should sit on the unit circle", n)
	}
	assert.InDelta(t, 1.0, pos["A"].X, 1e-9)
	assert.InDelta(t, 0.0, pos["A"].Y, 1e-9)
}

func TestShell(t *testing.T) {
	nodes := []string{"hub", "a", "b", "c"}
	pos := shell(nodes, nil)
	assert.Equal(t, geom.Zero, pos["hub"])
	for _, n := range nodes[1:] {
		assert.InDelta(t, 1.0, pos[n].Len(), 1e-9, "node %q should sit on the first ring", n)
	}
}

func TestKamadaKawaiSeparatesPathEnds(t *testing.T) {
	nodes, adj := pathGraph()
	pos := kamadaKawai(nodes, adj)

	endToEnd := pos["A"].Sub(pos["D"]).Len()
	hop := pos["A"].Sub(pos["B"]).Len()
	assert.Greater(t, endToEnd, hop, "path ends should sit further apart than adjacent nodes")
}

func TestSpringKeepsNeighborsCloser(t *testing.T) {
	nodes, adj := pathGraph()
	pos := spring(nodes, adj)

	neighbor := pos["A"].Sub(pos["B"]).Len()
	far := pos["A"].Sub(pos["D"]).Len()
	assert.Less(t, neighbor, far)
}

func TestRescale(t *testing.T) {
	t.Run("fits the half extents", func(t *testing.T) {
		pos := map[string]geom.Vec{
			"A": {X: -10, Y: -10},
			"B": {X: 10, Y: 10},
			"C": {X: 0, Y: 0},
		}
		out := Rescale(pos, 6, 3)

		maxX, maxY := 0.0, 0.0
		for _, p := range out {
			maxX = math.Max(maxX, math.Abs(p.X))
			maxY = math.Max(maxY, math.Abs(p.Y))
		}
		assert.LessOrEqual(t, maxX, 6.0+1e-9)
		assert.InDelta(t, 3.0, maxY, 1e-9, "the tight axis should fill its radius")
	})

	t.Run("centers on the origin", func(t *testing.T) {
		pos := map[string]geom.Vec{
			"A": {X: 100, Y: 50},
			"B": {X: 102, Y: 52},
		}
		out := Rescale(pos, 5, 4)

		var sum geom.Vec
		for _, p := range out {
			sum = sum.Add(p)
		}
		assert.InDelta(t, 0, sum.X, 1e-9)
		assert.InDelta(t, 0, sum.Y, 1e-9)
	})

	t.Run("coincident nodes collapse to the origin", func(t *testing.T) {
		pos := map[string]geom.Vec{
			"A": {X: 3, Y: 3},
			"B": {X: 3, Y: 3},
		}
		out := Rescale(pos, 5, 4)
		assert.Equal(t, geom.Zero, out["A"])
		assert.Equal(t, geom.Zero, out["B"])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Rescale(nil, 5, 4))
	})
}
