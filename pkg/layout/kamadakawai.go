package layout

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vizlab/dsanim/pkg/geom"
)

const stressIterations = 100

// kamadaKawai embeds the graph so Euclidean distances track graph-theoretic
// distances: all-pairs BFS builds the target distance matrix, and stress
// majorization (repeated Guttman transforms) minimizes the deviation.
// Disconnected pairs are held at one hop past the longest finite distance.
func kamadaKawai(nodes []string, adj map[string][]string) map[string]geom.Vec {
	n := len(nodes)
	if n <= 2 {
		return circular(nodes, adj)
	}

	idx := make(map[string]int, n)
	for i, name := range nodes {
		idx[name] = i
	}
	dist := graphDistances(nodes, idx, adj)

	// Seed from the circular layout so the iteration is deterministic.
	pos := circular(nodes, adj)
	z := mat.NewDense(n, 2, nil)
	for i, name := range nodes {
		z.Set(i, 0, pos[name].X)
		z.Set(i, 1, pos[name].Y)
	}

	b := mat.NewDense(n, n, nil)
	x := mat.NewDense(n, 2, nil)
	for iter := 0; iter < stressIterations; iter++ {
		guttman(b, z, dist)
		x.Mul(b, z)
		x.Scale(1/float64(n), x)
		z.Copy(x)
	}

	out := make(map[string]geom.Vec, n)
	for i, name := range nodes {
		out[name] = geom.Vec{X: z.At(i, 0), Y: z.At(i, 1)}
	}
	return out
}

// guttman fills b with the majorization matrix B(z) for uniform weights:
// off-diagonal entries -d_ij/rho_ij, diagonal entries the negated row sum.
func guttman(b, z *mat.Dense, dist *mat.Dense) {
	n, _ := z.Dims()
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := z.At(i, 0) - z.At(j, 0)
			dy := z.At(i, 1) - z.At(j, 1)
			rho := math.Max(math.Hypot(dx, dy), 1e-9)
			v := -dist.At(i, j) / rho
			b.Set(i, j, v)
			rowSum += v
		}
		b.Set(i, i, -rowSum)
	}
}

// graphDistances runs BFS from every node and returns the hop-count
// matrix. Unreachable pairs get the longest finite distance plus one.
func graphDistances(nodes []string, idx map[string]int, adj map[string][]string) *mat.Dense {
	n := len(nodes)
	const unreached = -1

	d := mat.NewDense(n, n, nil)
	maxFinite := 1.0
	for i := range nodes {
		hops := make([]int, n)
		for k := range hops {
			hops[k] = unreached
		}
		hops[i] = 0
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[nodes[cur]] {
				j, ok := idx[next]
				if !ok || hops[j] != unreached {
					continue
				}
				hops[j] = hops[cur] + 1
				queue = append(queue, j)
			}
		}
		for j, h := range hops {
			if h == unreached {
				d.Set(i, j, math.Inf(1))
				continue
			}
			d.Set(i, j, float64(h))
			maxFinite = math.Max(maxFinite, float64(h))
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsInf(d.At(i, j), 1) {
				d.Set(i, j, maxFinite+1)
			}
		}
	}
	return d
}
