package layout

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/vizlab/dsanim/pkg/geom"
)

// circular places the nodes evenly on a unit circle, in list order,
// starting at angle zero.
func circular(nodes []string, _ map[string][]string) map[string]geom.Vec {
	pos := make(map[string]geom.Vec, len(nodes))
	if len(nodes) == 1 {
		pos[nodes[0]] = geom.Zero
		return pos
	}
	step := 2 * math.Pi / float64(len(nodes))
	for i, n := range nodes {
		a := step * float64(i)
		pos[n] = geom.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	return pos
}

// shell places the nodes on concentric rings: one node in the center,
// then rings of growing capacity (6, 12, 18, ...), like hexagonal
// packing.
func shell(nodes []string, _ map[string][]string) map[string]geom.Vec {
	pos := make(map[string]geom.Vec, len(nodes))
	if len(nodes) == 0 {
		return pos
	}
	pos[nodes[0]] = geom.Zero

	rest := nodes[1:]
	ring := 1
	for len(rest) > 0 {
		capacity := 6 * ring
		if capacity > len(rest) {
			capacity = len(rest)
		}
		step := 2 * math.Pi / float64(capacity)
		for i := 0; i < capacity; i++ {
			a := step * float64(i)
			pos[rest[i]] = geom.Vec{X: math.Cos(a), Y: math.Sin(a)}.Scale(float64(ring))
		}
		rest = rest[capacity:]
		ring++
	}
	return pos
}

// random scatters the nodes uniformly in the unit square. The generator
// is seeded from the node names, so the same graph always lays out the
// same way.
func random(nodes []string, _ map[string][]string) map[string]geom.Vec {
	h := fnv.New64a()
	for _, n := range nodes {
		h.Write([]byte(n))
		h.Write([]byte{0})
	}
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	pos := make(map[string]geom.Vec, len(nodes))
	for _, n := range nodes {
		pos[n] = geom.Vec{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
	}
	return pos
}

// Spring layout tuning.
const (
	springIterations = 50
	springInitialT   = 0.1
)

// spring runs Fruchterman-Reingold force-directed placement: neighbors
// attract, all pairs repel, and a cooling temperature caps per-step
// displacement. Seeded from the circular layout for determinism.
func spring(nodes []string, adj map[string][]string) map[string]geom.Vec {
	n := len(nodes)
	if n <= 1 {
		return circular(nodes, adj)
	}

	pos := circular(nodes, adj)
	k := math.Sqrt(1 / float64(n)) // ideal pairwise distance

	linked := make(map[[2]string]bool)
	for u, ns := range adj {
		for _, v := range ns {
			linked[[2]string{u, v}] = true
			linked[[2]string{v, u}] = true
		}
	}

	t := springInitialT
	dt := t / float64(springIterations+1)
	for iter := 0; iter < springIterations; iter++ {
		disp := make(map[string]geom.Vec, n)
		for _, u := range nodes {
			for _, v := range nodes {
				if u == v {
					continue
				}
				delta := pos[u].Sub(pos[v])
				dist := math.Max(delta.Len(), 0.01)
				dir := delta.Scale(1 / dist)

				// Repulsion between every pair.
				disp[u] = disp[u].Add(dir.Scale(k * k / dist))
				// Attraction along edges.
				if linked[[2]string{u, v}] {
					disp[u] = disp[u].Sub(dir.Scale(dist * dist / k))
				}
			}
		}
		for _, u := range nodes {
			d := disp[u]
			if l := d.Len(); l > t {
				d = d.Scale(t / l)
			}
			pos[u] = pos[u].Add(d)
		}
		t -= dt
	}
	return pos
}
