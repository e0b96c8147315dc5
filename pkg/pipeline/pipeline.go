// Package pipeline provides the layout pipeline shared by the CLI and the
// HTTP API.
//
// This package decides, per invocation, how a graph is laid out: random,
// grid or circular placement, positioning by two node parameters, or the
// force-directed solver. By centralizing this logic, every entry point gets
// the same defaults, validation, status messages and instrumentation.
//
// # Architecture
//
// A layout run has three stages:
//
//  1. Load: read a graph file or synthesize a demo graph ([ParseFile], [Synthesize])
//  2. Layout: resolve edges to indices and compute positions ([Runner.Layout])
//  3. Export: serialize the positions ([Export])
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, pipeline.LogStatus(logger), nil)
//	g, err := pipeline.ParseFile("graph.json")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Layout(ctx, g, pipeline.Options{Mode: graph.ModeForce})
//	if err != nil {
//	    return err
//	}
//	data, err := pipeline.Export(result.Layout, pipeline.FormatJSON)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/core/force"
	"github.com/matzehuels/nodescape/pkg/core/layout"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMode is the layout mode used when none is given.
	DefaultMode = graph.ModeForce

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultMaxNodes caps graphs accepted by the pipeline.
	DefaultMaxNodes = 2_000_000

	// DefaultBatchSize is the number of nodes placed between yield points.
	DefaultBatchSize = layout.DefaultBatchSize

	// DefaultSpreadScale is the world half-width per sqrt(node).
	DefaultSpreadScale = layout.DefaultSpreadScale

	// progressEvery is how often (in iterations) solver progress is logged.
	progressEvery = 50
)

// =============================================================================
// Options - Layout Configuration
// =============================================================================

// Options contains all configuration for one layout run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Mode string `json:"mode,omitempty"`

	// Parameter positioning
	XParam string `json:"x_param,omitempty"`
	YParam string `json:"y_param,omitempty"`

	// World size. Spread overrides SpreadScale*sqrt(n) when positive.
	Spread      float64 `json:"spread,omitempty" validate:"gte=0"`
	SpreadScale float64 `json:"spread_scale,omitempty" validate:"gte=0"`

	Seed      uint64 `json:"seed,omitempty"`
	BatchSize int    `json:"batch_size,omitempty" validate:"gte=0"`
	MaxNodes  int    `json:"max_nodes,omitempty" validate:"gte=0"`

	// Solver holds the force-directed constants; zero fields take defaults.
	Solver force.Config `json:"solver,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a layout run.
type Result struct {
	// Layout is the serializable result, positions in node order.
	Layout graph.Layout

	// Positions is the interleaved position buffer (x0, y0, x1, y1, ...).
	Positions []float64

	// Axis is set for parameter layouts.
	Axis *axis.Info

	// Solve is set for force layouts.
	Solve *force.Result

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains layout execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	DroppedEdges int
	LayoutTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateMode checks that a layout mode is valid.
func ValidateMode(mode string) error {
	if !graph.ValidMode(mode) {
		return errors.New(errors.ErrCodeInvalidMode,
			"invalid mode: %q (must be one of: random, grid, circular, force, parameters)", mode)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.SpreadScale == 0 {
		o.SpreadScale = DefaultSpreadScale
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.BatchSize == 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.MaxNodes == 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	o.Solver.SetDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if o.Spread < 0 || o.SpreadScale < 0 || o.BatchSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "spread, spread_scale and batch_size must not be negative")
	}
	if o.IsParameters() {
		if o.XParam == "" || o.YParam == "" {
			return errors.New(errors.ErrCodeMissingParameter, "parameters mode needs both x_param and y_param")
		}
		if err := errors.ValidateParamName(o.XParam); err != nil {
			return err
		}
		if err := errors.ValidateParamName(o.YParam); err != nil {
			return err
		}
	}
	return nil
}

// IsParameters returns true for parameter positioning.
func (o *Options) IsParameters() bool { return o.Mode == graph.ModeParameters }

// IsForce returns true for the force-directed layout.
func (o *Options) IsForce() bool { return o.Mode == graph.ModeForce }
