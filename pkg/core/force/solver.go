package force

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrShortBuffer is returned when the position buffer holds fewer than
// two values per node.
var ErrShortBuffer = errors.New("position buffer shorter than 2*nodeCount")

// Edge connects two nodes by array index.
type Edge struct {
	From int
	To   int
}

// Result reports the outcome of a solver run.
type Result struct {
	// Iterations is the number of completed iterations.
	Iterations int `json:"iterations"`

	// Converged is true when the run stopped because MaxMovement fell below
	// the convergence threshold rather than at the iteration cap.
	Converged bool `json:"converged"`

	// MaxMovement is the largest per-node movement of the last iteration.
	MaxMovement float64 `json:"max_movement"`

	// DroppedEdges counts edges with an endpoint outside [0, nodeCount).
	DroppedEdges int `json:"dropped_edges"`

	// Strategy is the name of the repulsion strategy used.
	Strategy string `json:"strategy"`

	// Recovered counts nodes reset after acquiring a non-finite coordinate,
	// including nodes whose initial position was non-finite.
	Recovered int `json:"recovered"`
}

// Solver runs force-directed relaxation. A Solver may be reused for
// successive runs but is not safe for concurrent use; it shares its random
// source between runs.
type Solver struct {
	cfg Config
	rng *rand.Rand
}

// New creates a solver. Zero fields of cfg take their defaults. A nil rng
// gets a randomly seeded source.
func New(cfg Config, rng *rand.Rand) *Solver {
	cfg.SetDefaults()
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Solver{cfg: cfg, rng: rng}
}

// Config returns the solver's effective configuration.
func (s *Solver) Config() Config { return s.cfg }

// state is the per-run simulation state: four parallel arrays plus the
// force accumulators.
type state struct {
	x, y   []float64
	vx, vy []float64
	fx, fy []float64
}

func newState(n int) *state {
	buf := make([]float64, 6*n)
	return &state{
		x: buf[0*n : 1*n], y: buf[1*n : 2*n],
		vx: buf[2*n : 3*n], vy: buf[3*n : 4*n],
		fx: buf[4*n : 5*n], fy: buf[5*n : 6*n],
	}
}

// Run relaxes nodeCount nodes connected by edges, reading and writing the
// interleaved positions buffer. A non-positive spread is replaced by the
// natural spread for nodeCount.
//
// Edges with an out-of-range endpoint are skipped and counted. Run returns
// an error only for a short buffer or a cancelled context; in both cases
// positions is left unchanged.
func (s *Solver) Run(ctx context.Context, nodeCount int, edges []Edge, positions []float64, spread float64) (Result, error) {
	n := nodeCount
	if n <= 0 {
		return Result{DroppedEdges: len(edges)}, nil
	}
	if len(positions) < 2*n {
		return Result{}, fmt.Errorf("force: %w: have %d, need %d", ErrShortBuffer, len(positions), 2*n)
	}
	if spread <= 0 || math.IsNaN(spread) || math.IsInf(spread, 0) {
		spread = s.cfg.NaturalSpread(n)
	}

	valid, dropped := FilterEdges(n, edges)
	strategy := s.cfg.StrategyFor(n)
	res := Result{DroppedEdges: dropped, Strategy: strategy.Name()}

	st := newState(n)
	res.Recovered = s.initialize(st, positions[:2*n], spread)

	var (
		k         = s.cfg.effectiveRepulsion(n, spread)
		linkLen   = s.cfg.LinkLengthFactor * spread
		radius    = s.cfg.CenteringRadius * spread
		vmax      = s.cfg.MaxVelocityFactor * spread
		maxIter   = s.cfg.MaxIterationsFor(n)
		threshold = s.cfg.ThresholdFor(n)
		cooling   = s.cfg.CoolingFor(strategy)
	)

	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{Iterations: iter, DroppedEdges: dropped, Strategy: res.Strategy}, err
		}

		clear(st.fx)
		clear(st.fy)
		strategy.Accumulate(st.x, st.y, st.fx, st.fy, k, s.rng)
		s.attract(st, valid, linkLen)
		s.center(st, radius)
		movement, recovered := s.integrate(st, vmax, spread)
		vmax *= cooling

		res.Iterations = iter + 1
		res.MaxMovement = movement
		res.Recovered += recovered
		if s.cfg.OnIteration != nil {
			s.cfg.OnIteration(res.Iterations, movement)
		}
		if movement < threshold {
			res.Converged = true
			break
		}
	}

	for i := 0; i < n; i++ {
		positions[2*i] = st.x[i]
		positions[2*i+1] = st.y[i]
	}
	return res, nil
}

// FilterEdges returns the edges whose endpoints both lie in [0, n) and the
// number of edges removed. The input slice is not modified.
func FilterEdges(n int, edges []Edge) ([]Edge, int) {
	valid := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			continue
		}
		valid = append(valid, e)
	}
	return valid, len(edges) - len(valid)
}

// initialize copies positions into st. Unset (origin) and non-finite
// positions get a random start within half the spread; the non-finite ones
// are counted.
func (s *Solver) initialize(st *state, positions []float64, spread float64) int {
	recovered := 0
	for i := range st.x {
		x, y := positions[2*i], positions[2*i+1]
		switch {
		case !finite(x) || !finite(y):
			recovered++
			fallthrough
		case x == 0 && y == 0:
			x = (s.rng.Float64() - 0.5) * spread
			y = (s.rng.Float64() - 0.5) * spread
		}
		st.x[i], st.y[i] = x, y
	}
	return recovered
}

// attract applies a spring force along every edge, pulling or pushing the
// endpoints toward linkLen.
func (s *Solver) attract(st *state, edges []Edge, linkLen float64) {
	strength := s.cfg.AttractionStrength
	for _, e := range edges {
		a, b := e.From, e.To
		dx := st.x[b] - st.x[a]
		dy := st.y[b] - st.y[a]
		d := math.Sqrt(dx*dx + dy*dy)
		if d < 1e-9 {
			continue
		}
		f := strength * (d - linkLen)
		ux, uy := dx/d*f, dy/d*f
		st.fx[a] += ux
		st.fy[a] += uy
		st.fx[b] -= ux
		st.fy[b] -= uy
	}
}

// center pulls nodes outside radius back toward the origin.
func (s *Solver) center(st *state, radius float64) {
	strength := s.cfg.CenteringStrength
	for i := range st.x {
		r := math.Sqrt(st.x[i]*st.x[i] + st.y[i]*st.y[i])
		if r <= radius {
			continue
		}
		f := strength * (r - radius)
		st.fx[i] -= st.x[i] / r * f
		st.fy[i] -= st.y[i] / r * f
	}
}

// integrate turns forces into clamped velocities and moves every node. It
// returns the largest movement and the number of nodes reset.
func (s *Solver) integrate(st *state, vmax, spread float64) (float64, int) {
	var (
		damping   = s.cfg.Damping
		maxMove   float64
		recovered int
	)
	for i := range st.x {
		vx := st.fx[i] * damping
		vy := st.fy[i] * damping
		speed := math.Sqrt(vx*vx + vy*vy)
		if speed > vmax {
			vx *= vmax / speed
			vy *= vmax / speed
			speed = vmax
		}
		x, y := st.x[i]+vx, st.y[i]+vy
		if !finite(x) || !finite(y) {
			st.x[i] = (s.rng.Float64() - 0.5) * 0.02 * spread
			st.y[i] = (s.rng.Float64() - 0.5) * 0.02 * spread
			st.vx[i], st.vy[i] = 0, 0
			recovered++
			continue
		}
		st.x[i], st.y[i] = x, y
		st.vx[i], st.vy[i] = vx, vy
		if speed > maxMove {
			maxMove = speed
		}
	}
	return maxMove, recovered
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
