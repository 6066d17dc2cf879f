/*
Package envelope computes the outline of a variable-width stroke from the
samples of a fitted curve.

The outline is a single polygon contour: the left side of the stroke,
offset along the sample normals by half the sample width, followed by the
right side in reverse. It is meant for hit-testing and for finding the
region a renderer has to repaint, not for rendering itself. Self-overlaps of
the contour, e.g. at sharp turns of a wide stroke, are not resolved.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package envelope

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokefit"
	"github.com/npillmayer/strokefit/freehand"
)

// tracer writes to trace with key 'envelope'
func tracer() tracing.Trace {
	return tracing.Select("envelope")
}

// dotSegments is the number of polygon edges approximating a single dot.
const dotSegments = 16

// Envelope is the outline of a stroke.
type Envelope struct {
	poly polyclip.Polygon
}

// Of creates the envelope of a sequence of samples, as produced by
// freehand.Curve.Samples. If all samples are at the same position, the
// envelope is a disc with the width of the first sample. No samples result
// in an empty envelope.
func Of(samples []freehand.Sample) *Envelope {
	env := &Envelope{}
	if len(samples) == 0 {
		return env
	}
	if degenerate(samples) {
		env.poly.Add(disc(samples[0].Position, samples[0].Width/2))
		return env
	}
	n := len(samples)
	contour := make(polyclip.Contour, 0, 2*n)
	for _, s := range samples {
		contour.Add(point(s.Position + s.Normal.Scaled(s.Width/2)))
	}
	for i := n - 1; i >= 0; i-- {
		s := samples[i]
		contour.Add(point(s.Position - s.Normal.Scaled(s.Width/2)))
	}
	env.poly.Add(contour)
	tracer().Debugf("envelope of %d samples has %d vertices", n, env.N())
	return env
}

// degenerate is true if no sample is apart from the first one.
func degenerate(samples []freehand.Sample) bool {
	p := samples[0].Position
	for _, s := range samples[1:] {
		if !s.Position.Equal(p) {
			return false
		}
	}
	return true
}

func disc(center strokefit.Pair, radius float64) polyclip.Contour {
	c := make(polyclip.Contour, 0, dotSegments)
	for i := 0; i < dotSegments; i++ {
		theta := 2 * math.Pi * float64(i) / dotSegments
		c.Add(point(center + strokefit.Dir(theta).Scaled(radius)))
	}
	return c
}

func point(p strokefit.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

// Polygon returns the outline as a polygon, to be used with clipping
// operations.
func (env *Envelope) Polygon() polyclip.Polygon {
	return env.poly
}

// N returns the number of vertices of the outline.
func (env *Envelope) N() int {
	return env.poly.NumVertices()
}

// IsEmpty is a predicate: has the envelope been created from zero samples?
func (env *Envelope) IsEmpty() bool {
	return env.N() == 0
}

// Bounds is the bounding box of the outline. An empty envelope has an empty
// bounding box at the origin.
func (env *Envelope) Bounds() polyclip.Rectangle {
	if env.IsEmpty() {
		return polyclip.Rectangle{}
	}
	return env.poly.BoundingBox()
}

// Contains is a predicate: is p inside the outline?
func (env *Envelope) Contains(p strokefit.Pair) bool {
	for _, c := range env.poly {
		if c.Contains(point(p)) {
			return true
		}
	}
	return false
}

// AsString returns the vertices of an envelope as a (debugging) string.
func AsString(env *Envelope) string {
	var b strings.Builder
	for i, c := range env.poly {
		if i > 0 {
			b.WriteString(" | ")
		}
		for j, pt := range c {
			if j > 0 {
				b.WriteString(" -- ")
			}
			b.WriteString(fmt.Sprintf("(%.4g,%.4g)", pt.X, pt.Y))
		}
		b.WriteString(" -- cycle")
	}
	return b.String()
}
