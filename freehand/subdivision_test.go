package freehand

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strokefit"
	"github.com/stretchr/testify/assert"
)

func TestFourPointReproducesCubics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cube := func(x float64) float64 { return x * x * x }
	assert.InDelta(t, cube(0.5), fourPoint(cube(-1), cube(0), cube(1), cube(2)), 1e-12)
	assert.InDelta(t, cube(1.5), fourPoint(cube(0), cube(1), cube(2), cube(3)), 1e-12)
	p := fourPoint(strokefit.P(-1, 2), strokefit.P(0, 2), strokefit.P(1, 2), strokefit.P(2, 2))
	assert.InDelta(t, 0.5, p.X(), 1e-12)
	assert.InDelta(t, 2.0, p.Y(), 1e-12)
}

func TestSpanContextSaturatesAtCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := make([]Knot, 7)
	for i := range knots {
		knots[i].Position = strokefit.P(float64(i), 0)
	}
	for _, i := range []int{0, 3, 6} {
		knots[i].IsCorner = true
	}
	index := func(ctx [6]Knot) []int {
		var ix []int
		for _, k := range ctx {
			ix = append(ix, int(k.Position.X()))
		}
		return ix
	}
	assert.Equal(t, []int{0, 0, 0, 1, 2, 3}, index(spanContext(knots, 0)))
	assert.Equal(t, []int{0, 0, 1, 2, 3, 3}, index(spanContext(knots, 1)))
	assert.Equal(t, []int{0, 1, 2, 3, 3, 3}, index(spanContext(knots, 2)))
	assert.Equal(t, []int{3, 3, 3, 4, 5, 6}, index(spanContext(knots, 3)))
	assert.Equal(t, []int{3, 4, 5, 6, 6, 6}, index(spanContext(knots, 5)))
}

func TestRefineInterpolatesKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ctx [6]Knot
	for i := range ctx {
		ctx[i] = Knot{Position: strokefit.P(float64(i), float64(i*i)), Width: float64(i)}
	}
	var sd subdivider
	sd.refine(ctx)
	assert.Equal(t, 17, sd.size)
	assert.Equal(t, ctx[2].Position, sd.Pos(spanStart))
	assert.Equal(t, ctx[3].Position, sd.Pos(spanEnd))
	assert.Equal(t, ctx[2].Width, sd.Width(spanStart))
	assert.Equal(t, ctx[3].Width, sd.Width(spanEnd))
	// knots on a parabola over evenly spaced x: x and width stay linear
	for k := spanStart; k <= spanEnd; k++ {
		u := 2 + float64(k-spanStart)/(1<<subdivisions)
		assert.InDelta(t, u, sd.Pos(k).X(), 1e-12)
		assert.InDelta(t, u*u, sd.Pos(k).Y(), 1e-12)
		assert.InDelta(t, u, sd.Width(k), 1e-12)
	}
}
