package pipeline

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/core/force"
	"github.com/matzehuels/nodescape/pkg/core/layout"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
)

// =============================================================================
// Placement Dispatch
// =============================================================================

// place runs the spatial or parameter placement for opts.Mode into pos.
// Force layouts are handled by the runner.
func (r *Runner) place(ctx context.Context, g *graph.Graph, pos []float64, spread float64, opts Options, run *runState) (*axis.Info, error) {
	var err error
	switch opts.Mode {
	case graph.ModeRandom:
		err = layout.Random(ctx, pos, spread, run.rng, opts.BatchSize)
	case graph.ModeGrid:
		err = layout.Grid(ctx, pos, spread, opts.BatchSize)
	case graph.ModeCircular:
		err = layout.Circular(ctx, pos, spread, opts.BatchSize)
	case graph.ModeParameters:
		info, perr := layout.ByParameters(ctx, g.Nodes, opts.XParam, opts.YParam, pos, spread, opts.BatchSize)
		if perr != nil {
			return nil, placementError(perr)
		}
		return &info, nil
	default:
		return nil, ValidateMode(opts.Mode)
	}
	return nil, placementError(err)
}

// solve runs the force-directed solver on the graph's current positions.
func (r *Runner) solve(ctx context.Context, n int, resolved graph.Resolved, pos []float64, spread float64, opts Options, run *runState) (force.Result, error) {
	edges := make([]force.Edge, len(resolved.Edges))
	for i, e := range resolved.Edges {
		edges[i] = force.Edge{From: e.From, To: e.To}
	}

	cfg := opts.Solver
	user := cfg.OnIteration
	cfg.OnIteration = func(iter int, movement float64) {
		if iter%progressEvery == 0 {
			run.logger.Debug("solving", "iteration", iter, "max_movement", movement)
		}
		if user != nil {
			user(iter, movement)
		}
	}

	solver := force.New(cfg, run.rng)
	run.logger.Debug("starting solver",
		"nodes", n,
		"edges", len(edges),
		"strategy", solver.Config().StrategyFor(n).Name(),
		"max_iterations", solver.Config().MaxIterationsFor(n))

	res, err := solver.Run(ctx, n, edges, pos, spread)
	if err != nil {
		return res, placementError(err)
	}
	return res, nil
}

// placementError attaches an error code to placement failures.
func placementError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, layout.ErrMissingParameter):
		return errors.Wrap(errors.ErrCodeMissingParameter, err, "cannot position by parameters")
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.FromContext(err)
	case stderrors.Is(err, force.ErrShortBuffer):
		return errors.Wrap(errors.ErrCodeInternal, err, "solver rejected position buffer")
	default:
		return err
	}
}
