// Package layout positions graph nodes. It provides a closed registry of
// deterministic layout algorithms producing abstract coordinates, plus a
// rescaler that fits them into the frame.
//
// Algorithms work on an undirected view of the graph: a sorted node list
// and a neighbor adjacency. Every algorithm is deterministic for a given
// input, including the pseudo-random ones, so repeated renders of the
// same scene agree.
package layout

import (
	"math"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
)

// Algorithm names a node layout algorithm.
type Algorithm string

// The registered algorithms.
const (
	Spring      Algorithm = "spring"
	Circular    Algorithm = "circular"
	Shell       Algorithm = "shell"
	KamadaKawai Algorithm = "kamada-kawai"
	Random      Algorithm = "random"
)

// Default is the algorithm used when the caller does not choose one.
const Default = KamadaKawai

// Func computes abstract positions for nodes. The adjacency lists each
// node's undirected neighbors; nodes carries the node names in a stable
// order. Positions are unscaled; callers fit them to a frame with Rescale.
type Func func(nodes []string, adj map[string][]string) map[string]geom.Vec

// Get returns the implementation of alg, or an UNKNOWN_LAYOUT error.
// The registry is closed: there is no way to register external
// algorithms, so an unknown name is always a caller mistake.
func Get(alg Algorithm) (Func, error) {
	switch alg {
	case Spring:
		return spring, nil
	case Circular:
		return circular, nil
	case Shell:
		return shell, nil
	case KamadaKawai:
		return kamadaKawai, nil
	case Random:
		return random, nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownLayout, "unknown layout algorithm %q", string(alg))
	}
}

// All returns the registered algorithm names in a stable order.
func All() []Algorithm {
	return []Algorithm{Spring, Circular, Shell, KamadaKawai, Random}
}

// Rescale centers positions on the origin and uniformly scales them so the
// widest axis fills the given half-extents. Degenerate inputs (a single
// node, or all nodes coincident) collapse to the origin.
func Rescale(pos map[string]geom.Vec, xRadius, yRadius float64) map[string]geom.Vec {
	if len(pos) == 0 {
		return map[string]geom.Vec{}
	}

	var centroid geom.Vec
	for _, p := range pos {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(pos)))

	maxX, maxY := 0.0, 0.0
	for _, p := range pos {
		d := p.Sub(centroid)
		maxX = math.Max(maxX, math.Abs(d.X))
		maxY = math.Max(maxY, math.Abs(d.Y))
	}

	scale := math.Inf(1)
	if maxX > 0 {
		scale = xRadius / maxX
	}
	if maxY > 0 {
		scale = math.Min(scale, yRadius/maxY)
	}
	if math.IsInf(scale, 1) {
		scale = 0
	}

	out := make(map[string]geom.Vec, len(pos))
	for name, p := range pos {
		out[name] = p.Sub(centroid).Scale(scale)
	}
	return out
}
