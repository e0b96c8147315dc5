package force

import (
	"math"
	"math/rand/v2"
)

// minDistSq keeps coincident nodes from producing infinite repulsion.
const minDistSq = 1e-6

// Repulsion accumulates node-node repulsion into fx and fy.
//
// Implementations add k/d² along the unit vector from each other node to
// every node i. x, y, fx and fy all have length n; fx and fy are not
// cleared before the call.
type Repulsion interface {
	Name() string
	Accumulate(x, y, fx, fy []float64, k float64, rng *rand.Rand)
}

// Exact computes the full pairwise sum. Each pair is visited once and the
// force applied to both nodes in opposite directions.
type Exact struct{}

// Name returns "exact".
func (Exact) Name() string { return "exact" }

// Accumulate implements [Repulsion].
func (Exact) Accumulate(x, y, fx, fy []float64, k float64, _ *rand.Rand) {
	n := len(x)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			px, py := pairForce(x[i]-x[j], y[i]-y[j], k)
			fx[i] += px
			fy[i] += py
			fx[j] -= px
			fy[j] -= py
		}
	}
}

// Sampled estimates each node's repulsion from Size other nodes drawn
// uniformly with replacement, scaled by n/Size. The estimate is unbiased
// up to the n/(n-1) factor but noisy per node; the noise averages out over
// iterations.
type Sampled struct {
	Size int
}

// Name returns "sampled".
func (Sampled) Name() string { return "sampled" }

// Accumulate implements [Repulsion]. Forces are applied to the sampling
// node only.
func (s Sampled) Accumulate(x, y, fx, fy []float64, k float64, rng *rand.Rand) {
	n := len(x)
	if n < 2 {
		return
	}
	size := s.Size
	if size <= 0 {
		size = DefaultSampleSize
	}
	scale := float64(n) / float64(size)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for range size {
			j := rng.IntN(n - 1)
			if j >= i {
				j++
			}
			px, py := pairForce(x[i]-x[j], y[i]-y[j], k)
			sx += px
			sy += py
		}
		fx[i] += sx * scale
		fy[i] += sy * scale
	}
}

// pairForce returns the repulsion on a node displaced by (dx, dy) from
// another node.
func pairForce(dx, dy, k float64) (float64, float64) {
	d2 := dx*dx + dy*dy
	if d2 < minDistSq {
		d2 = minDistSq
		if dx == 0 && dy == 0 {
			// Coincident nodes: no direction to push along.
			return 0, 0
		}
	}
	d := math.Sqrt(dx*dx + dy*dy)
	f := k / d2
	return dx / d * f, dy / d * f
}
