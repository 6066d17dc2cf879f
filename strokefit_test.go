package strokefit

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestPerpIsExact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, p := range []Pair{P(1, 0), P(0.6, 0.8), P(-0.28, 0.96)} {
		n := p.Perp()
		assert.Equal(t, -p.Y(), n.X())
		assert.Equal(t, p.X(), n.Y())
	}
}

func TestUnitFallsBack(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, P(1, 0), P(0, 0).Unit(1e-10, P(1, 0)))
	u := P(3, 4).Unit(1e-10, P(1, 0))
	assert.InDelta(t, 0.6, u.X(), 1e-12)
	assert.InDelta(t, 0.8, u.Y(), 1e-12)
	assert.InDelta(t, 5.0, P(1, 1).Dist(P(4, 5)), 1e-12)
}

func TestSupplementaryAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, SupplementaryAngle(P(0, 0), P(5, 0), P(10, 0)))
	assert.InDelta(t, math.Pi/2, SupplementaryAngle(P(0, 0), P(10, 0), P(10, 10)), 1e-12)
	assert.InDelta(t, math.Pi/2, SupplementaryAngle(P(0, 0), P(10, 0), P(10, -10)), 1e-12)
	assert.InDelta(t, math.Pi, SupplementaryAngle(P(0, 0), P(10, 0), P(5, 0)), 1e-12)
	assert.Equal(t, 0.0, SupplementaryAngle(P(1, 1), P(1, 1), P(3, 2)))
}

func TestReduceAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, -math.Pi/2, ReduceAngle(3*math.Pi/2, 0), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, ReduceAngle(-math.Pi/2, math.Pi), 1e-12)
	assert.InDelta(t, 0.5, ReduceAngle(0.5, 0), 1e-12)
}

func TestSupplementaryAngleFlushesNoise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, SupplementaryAngle(P(0, 0), P(5, 1e-9), P(10, 0)))
	assert.Greater(t, SupplementaryAngle(P(0, 0), P(5, 1e-3), P(10, 0)), 0.0)
}

func TestC2P(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, P(1, 2), C2P(complex(1, 2)))
	assert.True(t, C2P(cmplx.NaN()).IsOrigin())
	assert.True(t, C2P(cmplx.Inf()).IsOrigin())
}

func TestDeg2Rad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, math.Pi, 180*Deg2Rad, 1e-8)
	assert.InDelta(t, 0.5, Zap(0.5), 0)
	assert.Equal(t, 0.0, Zap(-1e-9))
}
