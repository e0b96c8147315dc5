// Package axis computes axis lines, tick values and tick labels for
// parameter positioning mode.
//
// # Nice Intervals
//
// [NiceInterval] splits a visible range into roughly fifteen subdivisions
// and snaps the step to 1, 2.5 or 5 times a power of ten. Those steps always
// produce short decimal labels; steps like 3 or 7 do not. [DecimalPlaces]
// returns how many fractional digits a step needs so consecutive labels
// never collide (0.25 needs two, 0.5 needs one).
//
// # Projection
//
// A [Projector] holds the cached axis [Info] (parameter names, data ranges
// and spread) and turns a camera [Viewport] into [Axes]: the two axis lines,
// the shared tick interval and the visible ticks with their world positions
// and labels. The projector is meant to be re-run on every pan, zoom or
// resize; the cached Info only changes when the caller picks new axes or
// reloads data.
//
//	p := axis.NewProjector(info)
//	axes := p.Project(axis.Viewport{Left: -50, Right: 50, Bottom: -50, Top: 50})
//	for _, t := range axes.X.Ticks {
//	    fmt.Println(t.World, t.Label)
//	}
//
// Both axes use the same interval, derived from the larger of the two
// visible parameter ranges, so equal steps in data space look equal on
// screen regardless of each parameter's units.
package axis
