package force

import "math"

// Default heuristic constants. They were tuned by hand and have no
// analytical derivation.
const (
	DefaultRepulsionStrength   = 500.0
	DefaultAttractionStrength  = 0.2
	DefaultLinkLengthFactor    = 0.15
	DefaultCenteringStrength   = 0.005
	DefaultCenteringRadius     = 0.5
	DefaultDamping             = 0.85
	DefaultMaxVelocityFactor   = 0.2
	DefaultSampledCooling      = 0.96
	DefaultSpreadScale         = 100.0
	DefaultSamplingThreshold   = 10000
	DefaultSampleSize          = 50
	DefaultLargeGraphNodes     = 10000
	DefaultLargeGraphThreshold = 0.08
	DefaultThreshold           = 0.015
	DefaultSmallGraphNodes     = 1000
	DefaultMediumGraphNodes    = 10000
	DefaultSmallIterations     = 700
	DefaultMediumIterations    = 500
	DefaultLargeIterations     = 400
)

// Config holds the solver's tunable constants. Zero values are replaced
// with the defaults by [Config.SetDefaults], so a constant cannot be set to
// zero: use a small positive value instead (e.g. CenteringStrength 1e-9 to
// effectively disable centering). Validation rejects zero and negative
// values for the same reason. MaxIterations is the exception: zero selects
// the tiered caps.
type Config struct {
	// RepulsionStrength is k in k/d² at the natural spread
	// SpreadScale*sqrt(n). Default: 500.
	//
	// A run with any other spread uses k*(spread/natural)³ so that layouts
	// keep their shape when the world is resized. For example 3 nodes at
	// spread 10 (natural spread ~173) repel with an effective k of ~0.096.
	RepulsionStrength float64 `toml:"repulsion_strength" yaml:"repulsion_strength" json:"repulsion_strength,omitempty" validate:"gt=0"`

	// AttractionStrength is the spring constant of an edge. Default: 0.2.
	AttractionStrength float64 `toml:"attraction_strength" yaml:"attraction_strength" json:"attraction_strength,omitempty" validate:"gt=0"`

	// LinkLengthFactor times spread is the spring rest length. Default: 0.15.
	LinkLengthFactor float64 `toml:"link_length_factor" yaml:"link_length_factor" json:"link_length_factor,omitempty" validate:"gt=0"`

	// CenteringStrength pulls far-away nodes back toward the origin. Default: 0.005.
	CenteringStrength float64 `toml:"centering_strength" yaml:"centering_strength" json:"centering_strength,omitempty" validate:"gt=0"`

	// CenteringRadius times spread is the radius inside which no centering
	// force applies. Default: 0.5.
	CenteringRadius float64 `toml:"centering_radius" yaml:"centering_radius" json:"centering_radius,omitempty" validate:"gt=0"`

	// Damping scales force into velocity. Default: 0.85.
	Damping float64 `toml:"damping" yaml:"damping" json:"damping,omitempty" validate:"gt=0,lte=1"`

	// MaxVelocityFactor times spread caps per-iteration movement. Default: 0.2.
	MaxVelocityFactor float64 `toml:"max_velocity_factor" yaml:"max_velocity_factor" json:"max_velocity_factor,omitempty" validate:"gt=0"`

	// SampledCooling is the per-iteration decay of the velocity clamp under
	// [Sampled] repulsion. Sampling noise keeps nodes jittering by a few
	// world units forever, so the clamp anneals from MaxVelocityFactor*spread
	// toward zero and the run converges once it falls below the threshold.
	// 1 disables annealing. Exact repulsion never anneals. Default: 0.96.
	SampledCooling float64 `toml:"sampled_cooling" yaml:"sampled_cooling" json:"sampled_cooling,omitempty" validate:"gt=0,lte=1"`

	// SpreadScale defines the natural spread SpreadScale*sqrt(n) for which
	// RepulsionStrength is calibrated. Default: 100.
	SpreadScale float64 `toml:"spread_scale" yaml:"spread_scale" json:"spread_scale,omitempty" validate:"gt=0"`

	// SamplingThreshold is the node count from which [Sampled] repulsion
	// replaces [Exact]. Default: 10000.
	SamplingThreshold int `toml:"sampling_threshold" yaml:"sampling_threshold" json:"sampling_threshold,omitempty" validate:"gt=0"`

	// SampleSize is the number of nodes each node samples. Default: 50.
	SampleSize int `toml:"sample_size" yaml:"sample_size" json:"sample_size,omitempty" validate:"gt=0"`

	// LargeGraphNodes is the node count above which LargeGraphThreshold
	// applies. Default: 10000.
	LargeGraphNodes int `toml:"large_graph_nodes" yaml:"large_graph_nodes" json:"large_graph_nodes,omitempty" validate:"gt=0"`

	// LargeGraphThreshold is the convergence threshold for large graphs. Default: 0.08.
	LargeGraphThreshold float64 `toml:"large_graph_threshold" yaml:"large_graph_threshold" json:"large_graph_threshold,omitempty" validate:"gt=0"`

	// Threshold is the convergence threshold for all other graphs. Default: 0.015.
	Threshold float64 `toml:"threshold" yaml:"threshold" json:"threshold,omitempty" validate:"gt=0"`

	// SmallGraphNodes and MediumGraphNodes bound the iteration cap tiers.
	// Defaults: 1000 and 10000.
	SmallGraphNodes  int `toml:"small_graph_nodes" yaml:"small_graph_nodes" json:"small_graph_nodes,omitempty" validate:"gt=0"`
	MediumGraphNodes int `toml:"medium_graph_nodes" yaml:"medium_graph_nodes" json:"medium_graph_nodes,omitempty" validate:"gt=0"`

	// Iteration caps per tier. Defaults: 700, 500, 400.
	SmallIterations  int `toml:"small_iterations" yaml:"small_iterations" json:"small_iterations,omitempty" validate:"gt=0"`
	MediumIterations int `toml:"medium_iterations" yaml:"medium_iterations" json:"medium_iterations,omitempty" validate:"gt=0"`
	LargeIterations  int `toml:"large_iterations" yaml:"large_iterations" json:"large_iterations,omitempty" validate:"gt=0"`

	// MaxIterations overrides the tiered caps when positive.
	MaxIterations int `toml:"max_iterations" yaml:"max_iterations" json:"max_iterations,omitempty" validate:"gte=0"`

	// Repulsion forces a strategy regardless of node count.
	Repulsion Repulsion `toml:"-" yaml:"-" json:"-"`

	// OnIteration is called after every iteration with the 1-based
	// iteration number and that iteration's maximum movement.
	OnIteration func(iter int, maxMovement float64) `toml:"-" yaml:"-" json:"-"`
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults replaces zero fields with their defaults.
func (c *Config) SetDefaults() {
	setFloat(&c.RepulsionStrength, DefaultRepulsionStrength)
	setFloat(&c.AttractionStrength, DefaultAttractionStrength)
	setFloat(&c.LinkLengthFactor, DefaultLinkLengthFactor)
	setFloat(&c.CenteringStrength, DefaultCenteringStrength)
	setFloat(&c.CenteringRadius, DefaultCenteringRadius)
	setFloat(&c.Damping, DefaultDamping)
	setFloat(&c.MaxVelocityFactor, DefaultMaxVelocityFactor)
	setFloat(&c.SampledCooling, DefaultSampledCooling)
	setFloat(&c.SpreadScale, DefaultSpreadScale)
	setFloat(&c.LargeGraphThreshold, DefaultLargeGraphThreshold)
	setFloat(&c.Threshold, DefaultThreshold)
	setInt(&c.SamplingThreshold, DefaultSamplingThreshold)
	setInt(&c.SampleSize, DefaultSampleSize)
	setInt(&c.LargeGraphNodes, DefaultLargeGraphNodes)
	setInt(&c.SmallGraphNodes, DefaultSmallGraphNodes)
	setInt(&c.MediumGraphNodes, DefaultMediumGraphNodes)
	setInt(&c.SmallIterations, DefaultSmallIterations)
	setInt(&c.MediumIterations, DefaultMediumIterations)
	setInt(&c.LargeIterations, DefaultLargeIterations)
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// StrategyFor returns the repulsion strategy used for n nodes.
func (c Config) StrategyFor(n int) Repulsion {
	if c.Repulsion != nil {
		return c.Repulsion
	}
	if n >= c.SamplingThreshold {
		return Sampled{Size: c.SampleSize}
	}
	return Exact{}
}

// MaxIterationsFor returns the iteration cap for n nodes.
func (c Config) MaxIterationsFor(n int) int {
	switch {
	case c.MaxIterations > 0:
		return c.MaxIterations
	case n < c.SmallGraphNodes:
		return c.SmallIterations
	case n < c.MediumGraphNodes:
		return c.MediumIterations
	default:
		return c.LargeIterations
	}
}

// ThresholdFor returns the convergence threshold for n nodes. Note the
// strict comparison: a graph of exactly LargeGraphNodes nodes samples its
// repulsion but still converges against the tighter threshold. Thresholds
// are in world units; sampled runs reach them through [Config.CoolingFor].
func (c Config) ThresholdFor(n int) float64 {
	if n > c.LargeGraphNodes {
		return c.LargeGraphThreshold
	}
	return c.Threshold
}

// CoolingFor returns the per-iteration decay of the velocity clamp for a
// run with strategy r: SampledCooling for [Sampled], 1 otherwise.
func (c Config) CoolingFor(r Repulsion) float64 {
	if _, ok := r.(Sampled); ok {
		return c.SampledCooling
	}
	return 1
}

// NaturalSpread returns SpreadScale*sqrt(n), the world half-width a graph
// of n nodes is laid out in by default.
func (c Config) NaturalSpread(n int) float64 {
	if n <= 0 {
		return 0
	}
	return c.SpreadScale * math.Sqrt(float64(n))
}

// effectiveRepulsion scales RepulsionStrength to spread. Equilibrium
// distances between repelling nodes scale with the cube root of k, so k
// grows with the cube of the world size.
func (c Config) effectiveRepulsion(n int, spread float64) float64 {
	natural := c.NaturalSpread(n)
	if natural == 0 {
		return c.RepulsionStrength
	}
	r := spread / natural
	return c.RepulsionStrength * r * r * r
}
