package freehand

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokefit"
	"github.com/npillmayer/strokefit/polyn"
)

// tracer writes to trace with key 'freehand'
func tracer() tracing.Trace {
	return tracing.Select("freehand")
}

const (
	eps          = 1e-10    // numerical precision for distances
	mergeRatio   = 4.0      // r in r⋅BC < AB, r⋅BC < CD; must be > 2
	tension      = 1.0 / 16 // w of the 4-point scheme; must be < 1/8
	subdivisions = 3        // refinement steps per knot span
	dedupFactor  = 0.1      // input samples closer than dedupFactor⋅resolution are dropped
)

// ErrInvalidParams is returned for fit parameters which are not positive and finite.
var ErrInvalidParams = errors.New("invalid curve fit parameters")

// Params configures a curve fit. Params are fixed for the lifetime of a Curve.
type Params struct {
	// Interior knots with a supplementary angle above this threshold
	// (radians) are corners.
	MaxSmoothKnotAngle float64
	// Maximum angular step (radians) between the extra samples fanned out
	// at a corner.
	MaxSampleAngle float64
}

// DefaultParams returns parameters suitable for mouse and tablet input.
func DefaultParams() Params {
	return Params{
		MaxSmoothKnotAngle: math.Pi / 4,
		MaxSampleAngle:     math.Pi / 16,
	}
}

// InputSample is a raw pointer reading.
type InputSample struct {
	Position   strokefit.Pair // position of the pointer
	Width      float64        // pen width, ≥ 0
	Resolution float64        // minimum meaningful distance of the device, > 0
}

// Knot is a denoised, deduplicated control point of a fitted curve.
type Knot struct {
	Position strokefit.Pair
	Width    float64
	Angle    float64 // supplementary angle with neighbours, 0 at ends
	IsCorner bool    // corners are boundaries for subdivision
}

// Sample is a point of the dense polyline approximating a fitted curve.
//
// The normal is the tangent rotated by 90°:
//
//	Normal.X() == -Tangent.Y()
//	Normal.Y() == +Tangent.X()
//
// With the Y-axis pointing down this is the right hand side when walking
// along the curve.
type Sample struct {
	Position  strokefit.Pair
	Width     float64
	Tangent   strokefit.Pair // unit vector
	Normal    strokefit.Pair // unit vector
	Arclength float64        // polyline length from the first sample
	Angle     float64        // supplementary angle against the nearest samples at a different position
}

// Curve is a fit session, turning a stream of input samples into knots and
// samples. A Curve is not safe for concurrent use.
type Curve struct {
	params       Params
	inputs       []InputSample     // accepted input samples
	fits         []polyn.Quadratic // regression fits over windows of inputs
	points       []strokefit.Pair  // input positions, scratch for fitting
	regPositions []strokefit.Pair  // denoised positions, one per input
	regWidths    []float64         // denoised widths, one per input
	dists        []float64         // dists[i] = distance(knot i, knot i+1) before merging
	knots        []Knot
	samples      []Sample
	span         []Sample // samples of the current knot span, scratch
	subdiv       subdivider
}
