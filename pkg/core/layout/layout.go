package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/core/coords"
	"github.com/matzehuels/nodescape/pkg/graph"
)

// DefaultBatchSize is the number of nodes placed between yield points.
const DefaultBatchSize = 50000

// DefaultSpreadScale is the world half-width per sqrt(node).
const DefaultSpreadScale = 100.0

// ErrMissingParameter is returned by [ByParameters] when no node carries a
// numeric value for a requested parameter.
var ErrMissingParameter = errors.New("no node has a numeric value for parameter")

// Spread returns scale*sqrt(n), or 0 for an empty graph. A non-positive
// scale uses DefaultSpreadScale.
func Spread(n int, scale float64) float64 {
	if n <= 0 {
		return 0
	}
	if scale <= 0 {
		scale = DefaultSpreadScale
	}
	return scale * math.Sqrt(float64(n))
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Random places every node uniformly in [-spread, spread]².
func Random(ctx context.Context, pos []float64, spread float64, rng *rand.Rand, batchSize int) error {
	return each(ctx, len(pos)/2, batchSize, func(i int) {
		pos[2*i] = (rng.Float64()*2 - 1) * spread
		pos[2*i+1] = (rng.Float64()*2 - 1) * spread
	})
}

// Grid places nodes row by row on a ceil(sqrt(n)) wide square grid.
func Grid(ctx context.Context, pos []float64, spread float64, batchSize int) error {
	n := len(pos) / 2
	if n == 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	cell := 2 * spread / float64(cols)
	return each(ctx, n, batchSize, func(i int) {
		row, col := i/cols, i%cols
		pos[2*i] = -spread + (float64(col)+0.5)*cell
		pos[2*i+1] = -spread + (float64(row)+0.5)*cell
	})
}

// Circular places nodes at equal angles on a circle of radius spread,
// starting on the positive X axis.
func Circular(ctx context.Context, pos []float64, spread float64, batchSize int) error {
	n := len(pos) / 2
	if n == 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	return each(ctx, n, batchSize, func(i int) {
		angle := float64(i) * step
		pos[2*i] = spread * math.Cos(angle)
		pos[2*i+1] = spread * math.Sin(angle)
	})
}

// ByParameters positions each node by its xParam and yParam values and
// returns the axis info describing the mapping. A node missing one of the
// parameters is placed at that axis' data minimum. It fails with
// ErrMissingParameter if no node has a numeric value for a parameter.
func ByParameters(ctx context.Context, nodes []graph.Node, xParam, yParam string, pos []float64, spread float64, batchSize int) (axis.Info, error) {
	info := axis.Info{XParam: xParam, YParam: yParam, Spread: spread}
	if len(nodes) == 0 {
		return info, nil
	}

	var err error
	if info.X, err = paramRange(nodes, xParam); err != nil {
		return axis.Info{}, err
	}
	if info.Y, err = paramRange(nodes, yParam); err != nil {
		return axis.Info{}, err
	}

	err = each(ctx, len(nodes), batchSize, func(i int) {
		pos[2*i] = place(&nodes[i], xParam, info.X, spread)
		pos[2*i+1] = place(&nodes[i], yParam, info.Y, spread)
	})
	if err != nil {
		return axis.Info{}, err
	}
	return info, nil
}

func paramRange(nodes []graph.Node, name string) (coords.Range, error) {
	r, count := graph.ParamRange(nodes, name)
	if count == 0 {
		return coords.Range{}, fmt.Errorf("%w %q", ErrMissingParameter, name)
	}
	return r, nil
}

func place(n *graph.Node, name string, r coords.Range, spread float64) float64 {
	v, ok := n.Param(name)
	if !ok || math.IsInf(v, 0) {
		v = r.Min
	}
	return r.ToWorld(v, spread)
}

// each calls fn for every index in [0, n), yielding and checking ctx every
// batchSize indices.
func each(ctx context.Context, n, batchSize int, fn func(i int)) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if i > 0 && i%batchSize == 0 {
			runtime.Gosched()
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fn(i)
	}
	return nil
}
