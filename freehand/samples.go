package freehand

import (
	"math"

	"github.com/npillmayer/strokefit"
)

// default tangent for degenerate geometry
var defaultTangent = strokefit.P(1, 0)

// computeSamples subdivides every knot span into samples, computing
// arclengths, tangents and normals, and fans out extra samples at corners
// for a round join.
func (c *Curve) computeSamples() {
	n := len(c.knots)
	if n == 0 {
		panic("cannot sample a curve without knots")
	}
	if !c.knots[0].IsCorner || !c.knots[n-1].IsCorner {
		panic("end knots of a curve must be corners")
	}
	c.samples = c.samples[:0]
	for i := 0; i < n-1; i++ {
		c.sampleSpan(i)
	}
	c.appendLastSample()
	c.computeSampleAngles()
}

// sampleSpan appends the samples from knot i (included) to knot i+1 (not
// included).
func (c *Curve) sampleSpan(i int) {
	C := c.knots[i]
	c.subdiv.refine(spanContext(c.knots, i))
	sd := &c.subdiv

	// collect samples, skipping duplicates; a span has at least two
	sC := Sample{Position: sd.Pos(spanStart), Width: sd.Width(spanStart)}
	if i > 0 {
		s0 := c.samples[len(c.samples)-1]
		sC.Arclength = s0.Arclength + s0.Position.Dist(sC.Position)
	}
	span := append(c.span[:0], sC)
	for k := spanStart + 1; k <= spanEnd; k++ {
		s0 := span[len(span)-1]
		p1 := sd.Pos(k)
		if ds := s0.Position.Dist(p1); ds > eps {
			span = append(span, Sample{Position: p1, Width: sd.Width(k), Arclength: s0.Arclength + ds})
		}
	}
	if len(span) == 1 {
		p1 := sd.Pos(spanEnd)
		span = append(span, Sample{
			Position:  p1,
			Width:     sd.Width(spanEnd),
			Arclength: sC.Arclength + sC.Position.Dist(p1),
		})
	}
	c.span = span

	// tangent of first sample: one-sided at corners, central otherwise
	if C.IsCorner {
		setTangent(&span[0], span[1].Position-span[0].Position)
	} else {
		prev := c.samples[len(c.samples)-1]
		setTangent(&span[0], span[1].Position-prev.Position)
	}
	for k := 1; k < len(span)-1; k++ {
		setTangent(&span[k], span[k+1].Position-span[k-1].Position)
	}

	if C.IsCorner && i > 0 {
		c.appendRoundJoin(span[0], span[1])
	}
	// the last one is the first sample of the next span
	c.samples = append(c.samples, span[:len(span)-1]...)
}

// appendRoundJoin fans out samples at a corner sample s1, with tangents
// sweeping from the incoming direction (latest sample to s1) to the outgoing
// direction (s1 to s2) in steps of at most MaxSampleAngle. The extra samples
// all have the arclength of s1.
func (c *Curve) appendRoundJoin(s1, s2 Sample) {
	if len(c.samples) == 0 {
		panic("round join needs a preceding sample")
	}
	s0 := c.samples[len(c.samples)-1]
	a1 := (s1.Position - s0.Position).Phase()
	a2 := strokefit.ReduceAngle((s2.Position - s1.Position).Phase(), a1)
	na := int(math.Floor(math.Abs(a2-a1) / c.params.MaxSampleAngle))
	for k := 0; k < na; k++ {
		u := float64(k) / float64(na)
		t := strokefit.Dir(a1 + u*(a2-a1))
		c.samples = append(c.samples, Sample{
			Position:  s1.Position,
			Width:     s1.Width,
			Arclength: s1.Arclength,
			Tangent:   t,
			Normal:    t.Perp(),
		})
	}
	if na > 0 {
		tracer().Debugf("round join of %d samples at %s, turning %.4g°",
			na, ptstring(s1.Position), rad2deg(a2-a1))
	}
}

// appendLastSample pins a final sample to the last knot.
func (c *Curve) appendLastSample() {
	last := c.knots[len(c.knots)-1]
	s := Sample{Position: last.Position, Width: last.Width}
	if len(c.samples) > 0 {
		s0 := c.samples[len(c.samples)-1]
		d := s.Position - s0.Position
		s.Arclength = s0.Arclength + d.Length()
		setTangent(&s, d)
	} else {
		setTangent(&s, 0)
	}
	c.samples = append(c.samples, s)
}

// computeSampleAngles sets the supplementary angle of every sample from the
// nearest samples before and after it at a different position. Runs of
// coincident samples, as produced by round joins, share one angle. Samples
// at the position of the first or last sample get 0.
func (c *Curve) computeSampleAngles() {
	n := len(c.samples)
	for i := 0; i < n; {
		j := i + 1 // end of the run of samples coincident with sample i
		for j < n && c.samples[j].Position.Dist(c.samples[i].Position) <= eps {
			j++
		}
		var angle float64
		if i > 0 && j < n {
			angle = strokefit.SupplementaryAngle(
				c.samples[i-1].Position, c.samples[i].Position, c.samples[j].Position)
		}
		for k := i; k < j; k++ {
			c.samples[k].Angle = angle
		}
		i = j
	}
}

// setTangent normalizes d into the tangent of s, falling back to (1,0) for
// degenerate d, and derives the normal.
func setTangent(s *Sample, d strokefit.Pair) {
	s.Tangent = d.Unit(eps, defaultTangent)
	s.Normal = s.Tangent.Perp()
}
