// Package force implements a force-directed layout solver for large
// node-link graphs.
//
// The solver treats nodes as charged particles and edges as springs. Each
// iteration accumulates three forces per node, integrates them into a
// damped, clamped velocity, and moves the node. It stops when the largest
// per-node movement drops below a size-dependent threshold or when an
// iteration cap is reached.
//
// # Forces
//
//   - Repulsion: every pair of nodes pushes apart with strength k/d².
//   - Attraction: every edge pulls its endpoints toward a target length of
//     0.15*spread, proportional to the signed displacement (Hooke's law).
//   - Centering: nodes further than 0.5*spread from the origin are pulled
//     back in proportion to the excess distance. Nodes inside that radius
//     feel nothing, so the layout does not collapse onto the center.
//
// # Repulsion Strategies
//
// Exact repulsion is O(n²). For graphs at or above
// [Config.SamplingThreshold] nodes (10000 by default), the solver switches to
// [Sampled], which estimates each node's repulsion from a fixed number of
// randomly chosen other nodes and scales the result by n/sampleSize. Both
// strategies implement [Repulsion] and can be selected explicitly through
// [Config.Repulsion].
//
// # Integration
//
// Velocities are first order: v = damping*F, clamped to 0.2*spread, then
// added to the position. Under [Sampled] repulsion the clamp shrinks by
// [Config.SampledCooling] every iteration, since the sampled estimate never
// settles on its own; the movement bound then reaches the convergence
// threshold well inside the iteration cap. A node that ends up with a non-finite coordinate
// is reset to a small random offset near the origin with zero velocity and
// counted in [Result.Recovered]. NaN never reaches the caller.
//
// # Positions
//
// Positions are passed as an interleaved buffer (x0, y0, x1, y1, ...). The
// solver copies them into its own state, runs, and copies the result back
// only when the run finishes. A node at exactly the origin, or with a
// non-finite coordinate, is treated as unset and receives a random start.
//
// # Cancellation
//
// [Solver.Run] checks its context at every iteration boundary. A cancelled
// run returns the context's error and leaves the position buffer untouched.
//
// # Usage
//
//	s := force.New(force.Config{}, rand.New(rand.NewPCG(1, 2)))
//	res, err := s.Run(ctx, n, edges, positions, spread)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d iterations, converged=%v\n", res.Iterations, res.Converged)
package force
