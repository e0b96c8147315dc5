package axis

import (
	"math"

	"github.com/matzehuels/nodescape/pkg/core/coords"
)

// DefaultMaxTicks bounds the ticks emitted per axis, which only matters
// for pathological viewports (e.g. zoomed out by many orders of magnitude).
const DefaultMaxTicks = 1000

// snapTolerance absorbs rounding when converting range ends into tick
// multiples.
const snapTolerance = 1e-9

// Info is the cached state of parameter positioning mode: which parameter
// drives each axis, its observed data range, and the world spread.
type Info struct {
	XParam string       `json:"x_param" yaml:"x_param"`
	YParam string       `json:"y_param" yaml:"y_param"`
	X      coords.Range `json:"x" yaml:"x"`
	Y      coords.Range `json:"y" yaml:"y"`
	Spread float64      `json:"spread" yaml:"spread"`
}

// Viewport is the visible world rectangle reported by the camera.
// Top and Bottom may arrive in either order.
type Viewport struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// normalized returns the viewport with Left <= Right and Bottom <= Top.
func (v Viewport) normalized() Viewport {
	if v.Left > v.Right {
		v.Left, v.Right = v.Right, v.Left
	}
	if v.Bottom > v.Top {
		v.Bottom, v.Top = v.Top, v.Bottom
	}
	return v
}

// Pan shifts the viewport by (dx, dy) world units.
func (v Viewport) Pan(dx, dy float64) Viewport {
	return Viewport{Left: v.Left + dx, Right: v.Right + dx, Top: v.Top + dy, Bottom: v.Bottom + dy}
}

// Zoom scales the viewport around its center. factor < 1 zooms in.
func (v Viewport) Zoom(factor float64) Viewport {
	n := v.normalized()
	cx, cy := (n.Left+n.Right)/2, (n.Bottom+n.Top)/2
	hw, hh := (n.Right-n.Left)/2*factor, (n.Top-n.Bottom)/2*factor
	return Viewport{Left: cx - hw, Right: cx + hw, Bottom: cy - hh, Top: cy + hh}
}

// ViewportFor returns the viewport that exactly frames the world of spread.
func ViewportFor(spread float64) Viewport {
	return Viewport{Left: -spread, Right: spread, Top: spread, Bottom: -spread}
}

// Tick is one labelled axis tick.
type Tick struct {
	Value float64 `json:"value"`
	World float64 `json:"world"`
	Label string  `json:"label"`
}

// Line is an axis segment in world coordinates.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Axis describes one rendered axis.
type Axis struct {
	Param string `json:"param"`
	Line  Line   `json:"line"`
	// Anchored is false when the data minimum lies off screen and the line
	// was snapped to the nearest viewport edge.
	Anchored bool   `json:"anchored"`
	Ticks    []Tick `json:"ticks"`
}

// Axes is the projection of an Info onto one viewport.
type Axes struct {
	X        Axis    `json:"x"`
	Y        Axis    `json:"y"`
	Interval float64 `json:"interval"`
	Decimals int     `json:"decimals"`
}

// Compute projects info onto vp. maxTicks <= 0 uses DefaultMaxTicks.
func Compute(info Info, vp Viewport, maxTicks int) Axes {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	vp = vp.normalized()
	spread := info.Spread

	xlo, xhi := info.X.ToParam(vp.Left, spread), info.X.ToParam(vp.Right, spread)
	ylo, yhi := info.Y.ToParam(vp.Bottom, spread), info.Y.ToParam(vp.Top, spread)

	interval := NiceInterval(math.Max(xhi-xlo, yhi-ylo))
	places := DecimalPlaces(interval)

	// The X axis runs horizontally at the world height of the Y minimum.
	yAt, yAnchored := anchor(info.Y.ToWorld(info.Y.Min, spread), vp.Bottom, vp.Top)
	xAt, xAnchored := anchor(info.X.ToWorld(info.X.Min, spread), vp.Left, vp.Right)

	return Axes{
		X: Axis{
			Param:    info.XParam,
			Line:     Line{X1: vp.Left, Y1: yAt, X2: vp.Right, Y2: yAt},
			Anchored: yAnchored,
			Ticks:    ticks(info.X, spread, xlo, xhi, vp.Left, vp.Right, interval, places, maxTicks),
		},
		Y: Axis{
			Param:    info.YParam,
			Line:     Line{X1: xAt, Y1: vp.Bottom, X2: xAt, Y2: vp.Top},
			Anchored: xAnchored,
			Ticks:    ticks(info.Y, spread, ylo, yhi, vp.Bottom, vp.Top, interval, places, maxTicks),
		},
		Interval: interval,
		Decimals: places,
	}
}

// anchor keeps pos when it is inside [lo, hi], otherwise snaps it to the
// nearest edge.
func anchor(pos, lo, hi float64) (float64, bool) {
	switch {
	case pos < lo:
		return lo, false
	case pos > hi:
		return hi, false
	default:
		return pos, true
	}
}

func ticks(r coords.Range, spread, lo, hi, worldLo, worldHi, interval float64, places, maxTicks int) []Tick {
	if r.Degenerate() {
		// Every node sits on the center line; label it with the only value.
		if worldLo <= 0 && 0 <= worldHi {
			return []Tick{{Value: r.Min, World: 0, Label: FormatTick(r.Min, places)}}
		}
		return nil
	}
	if interval <= 0 {
		return nil
	}

	lo = math.Max(lo, r.Min)
	if lo > hi {
		return nil
	}
	first := math.Ceil(lo/interval - snapTolerance)
	last := math.Floor(hi/interval + snapTolerance)
	if last < first {
		return nil
	}
	if n := last - first + 1; n > float64(maxTicks) {
		last = first + float64(maxTicks) - 1
	}

	out := make([]Tick, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		v := k * interval
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		out = append(out, Tick{
			Value: v,
			World: r.ToWorld(v, spread),
			Label: FormatTick(v, places),
		})
	}
	return out
}

// Projector caches axis Info across viewport changes. It is not safe for
// concurrent use.
type Projector struct {
	info     Info
	ok       bool
	MaxTicks int
}

// NewProjector returns a projector holding info.
func NewProjector(info Info) *Projector {
	return &Projector{info: info, ok: true}
}

// SetInfo replaces the cached info; call it when the user picks different
// axes or reloads data.
func (p *Projector) SetInfo(info Info) {
	p.info = info
	p.ok = true
}

// Reset drops the cached info when leaving parameter positioning mode.
func (p *Projector) Reset() {
	p.info = Info{}
	p.ok = false
}

// Info returns the cached info and whether one is set.
func (p *Projector) Info() (Info, bool) { return p.info, p.ok }

// Project computes axes for vp from the cached info. It returns false when
// no info is cached.
func (p *Projector) Project(vp Viewport) (Axes, bool) {
	if !p.ok {
		return Axes{}, false
	}
	return Compute(p.info, vp, p.MaxTicks), true
}
