package freehand

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// New creates a curve fit session with fixed parameters. Both angles must be
// positive and finite.
func New(params Params) (*Curve, error) {
	if !positive(params.MaxSmoothKnotAngle) {
		return nil, fmt.Errorf("%w: max smooth knot angle is %g", ErrInvalidParams, params.MaxSmoothKnotAngle)
	}
	if !positive(params.MaxSampleAngle) {
		return nil, fmt.Errorf("%w: max sample angle is %g", ErrInvalidParams, params.MaxSampleAngle)
	}
	return &Curve{params: params}, nil
}

// MustNew is like New, but panics on invalid parameters.
func MustNew(params Params) *Curve {
	c, err := New(params)
	if err != nil {
		panic(err)
	}
	return c
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Params returns the parameters the curve has been created with.
func (c *Curve) Params() Params {
	return c.params
}

// BeginFit starts a new fit, clearing all input and derived state.
func (c *Curve) BeginFit() {
	c.inputs = c.inputs[:0]
	c.fits = c.fits[:0]
	c.regPositions = c.regPositions[:0]
	c.regWidths = c.regWidths[:0]
	c.knots = c.knots[:0]
	c.samples = c.samples[:0]
}

// ContinueFit adds an input sample and re-derives knots and samples from
// all input collected since BeginFit. Samples too close to their predecessor
// are dropped silently.
func (c *Curve) ContinueFit(in InputSample) {
	c.appendInputSample(in)
	c.computeRegPositions()
	c.computeRegWidths()
	c.computeKnots()
	c.computeSamples()
	tracer().Debugf("fit: %d inputs, %d knots, %d samples, length %.4g",
		len(c.inputs), len(c.knots), len(c.samples), c.Length())
}

// EndFit finishes a fit. Knots and samples are already up to date after the
// last call to ContinueFit, so EndFit does not change anything.
func (c *Curve) EndFit() {
}

// NumInputSamples is the number of input samples accepted since BeginFit.
func (c *Curve) NumInputSamples() int {
	return len(c.inputs)
}

// NumKnots returns the number of knots.
func (c *Curve) NumKnots() int {
	return len(c.knots)
}

// Knot returns knot #i. Panics if i is out of range.
func (c *Curve) Knot(i int) Knot {
	checkIndex("knot", i, len(c.knots))
	return c.knots[i]
}

// Knots returns a copy of all knots.
func (c *Curve) Knots() []Knot {
	return slices.Clone(c.knots)
}

// NumSamples returns the number of samples.
func (c *Curve) NumSamples() int {
	return len(c.samples)
}

// Sample returns sample #i. Panics if i is out of range.
func (c *Curve) Sample(i int) Sample {
	checkIndex("sample", i, len(c.samples))
	return c.samples[i]
}

// Samples returns a copy of all samples.
func (c *Curve) Samples() []Sample {
	return slices.Clone(c.samples)
}

// Length is the arclength of the last sample, or 0 for an empty curve.
func (c *Curve) Length() float64 {
	if len(c.samples) == 0 {
		return 0
	}
	return c.samples[len(c.samples)-1].Arclength
}

func checkIndex(what string, i, n int) {
	if i < 0 || i >= n {
		tracer().Errorf("%s index %d out of range", what, i)
		panic(fmt.Sprintf("%s index %d out of range [0,%d)", what, i, n))
	}
}

// String returns the knots of a curve as a (debugging) string, corner
// knots marked with '!'. Example:
//
//	(0,0)! .. (10,0)! .. (10,10)!
func (c *Curve) String() string {
	var b strings.Builder
	for i, k := range c.knots {
		if i > 0 {
			b.WriteString(" .. ")
		}
		b.WriteString(ptstring(k.Position))
		if k.IsCorner {
			b.WriteByte('!')
		}
	}
	return b.String()
}
