package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/nodescape/pkg/core/layout"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
	"github.com/matzehuels/nodescape/pkg/observability"
)

// Runner executes layout runs and reports their progress.
//
// With a nil random source, every run draws from a fresh generator seeded
// by Options.Seed, so identical requests give identical layouts and
// multiple goroutines can safely share the Runner. A non-nil source is
// shared across runs and makes the Runner unsafe for concurrent use.
type Runner struct {
	Logger *log.Logger
	Status StatusSink
	rng    *rand.Rand
}

// NewRunner creates a runner. A nil logger uses log.Default(); a nil sink
// discards status messages.
func NewRunner(logger *log.Logger, status StatusSink, rng *rand.Rand) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if status == nil {
		status = Discard
	}
	return &Runner{Logger: logger, Status: status, rng: rng}
}

// runState is per-run context threaded through the stages.
type runState struct {
	id     string
	logger *log.Logger
	rng    *rand.Rand
}

// Layout computes positions for every node of g and writes them back into
// the nodes' X and Y.
//
// Edges naming unknown nodes are dropped and reported to the status sink,
// never returned as errors. An empty graph short-circuits to an empty
// layout. Errors carry codes from pkg/errors: INVALID_MODE and
// MISSING_PARAMETER for bad options, CANCELED when ctx ends mid-run.
func (r *Runner) Layout(ctx context.Context, g *graph.Graph, opts Options) (res *Result, err error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	n := len(g.Nodes)
	if err := errors.ValidateNodeCount(n, opts.MaxNodes); err != nil {
		return nil, err
	}

	run := &runState{id: uuid.NewString()}
	run.logger = opts.Logger.With("run", run.id[:8], "mode", opts.Mode)
	run.rng = r.rng
	if run.rng == nil {
		run.rng = layout.NewRand(opts.Seed)
	}

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, opts.Mode, n)
	start := time.Now()
	defer func() {
		hooks.OnLayoutComplete(ctx, opts.Mode, time.Since(start), err)
	}()

	spread := opts.Spread
	if spread == 0 {
		spread = layout.Spread(n, opts.SpreadScale)
	}

	res = &Result{
		Layout: graph.Layout{Mode: opts.Mode, Spread: spread, RunID: run.id},
		Stats:  Stats{NodeCount: n, EdgeCount: len(g.Edges)},
	}
	if n == 0 {
		r.Status.Status("no nodes to lay out")
		res.Layout.Positions = []graph.Position{}
		return res, nil
	}

	resolved := g.Resolve()
	if resolved.Dropped > 0 {
		hooks.OnEdgesDropped(ctx, resolved.Dropped)
		r.Status.Status(droppedMessage(resolved.Dropped))
		run.logger.Warn("dropped edges", "count", resolved.Dropped)
	}
	if resolved.Duplicates > 0 {
		run.logger.Warn("duplicate node ids", "count", resolved.Duplicates)
	}
	res.Stats.DroppedEdges = resolved.Dropped

	run.logger.Debug("laying out", "nodes", n, "edges", len(resolved.Edges), "spread", spread)

	var pos []float64
	if opts.IsForce() {
		pos = g.Positions()
		solved, err := r.solve(ctx, n, resolved, pos, spread, opts, run)
		if err != nil {
			return nil, err
		}
		hooks.OnSolveComplete(ctx, solved.Strategy, solved.Iterations, solved.Converged)
		if solved.DroppedEdges > 0 {
			hooks.OnEdgesDropped(ctx, solved.DroppedEdges)
			r.Status.Status(droppedMessage(solved.DroppedEdges))
		}
		if solved.Recovered > 0 {
			r.Status.Status(recoveredMessage(solved.Recovered))
		}
		r.Status.Status(solveMessage(solved))

		res.Solve = &solved
		res.Stats.DroppedEdges += solved.DroppedEdges
		res.Layout.Iterations = solved.Iterations
		res.Layout.Converged = solved.Converged
		res.Layout.Strategy = solved.Strategy
		res.Layout.Recovered = solved.Recovered
	} else {
		pos = make([]float64, 2*n)
		info, err := r.place(ctx, g, pos, spread, opts, run)
		if err != nil {
			return nil, err
		}
		res.Axis = info
		res.Layout.Axis = info
		r.Status.Status(placedMessage(n, opts.Mode))
	}

	g.SetPositions(pos)
	res.Positions = pos
	res.Layout.Positions = graph.NewPositions(g.Nodes, pos)
	res.Layout.DroppedEdges = res.Stats.DroppedEdges
	res.Stats.LayoutTime = time.Since(start)

	run.logger.Info("layout complete",
		"nodes", n,
		"dropped_edges", res.Stats.DroppedEdges,
		"duration", res.Stats.LayoutTime)
	return res, nil
}
