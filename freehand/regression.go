package freehand

import (
	"fmt"

	"github.com/npillmayer/strokefit/polyn"
)

// computeRegPositions denoises input positions by fitting quadratic curves
// to sliding windows of inputs and blending them. There is one denoised
// position per input sample; consecutive positions may coincide.
func (c *Curve) computeRegPositions() {
	n := len(c.inputs)
	if n == 0 {
		panic("cannot regress positions without input samples")
	}
	c.points = c.points[:0]
	for _, in := range c.inputs {
		c.points = append(c.points, in.Position)
	}
	c.fits = polyn.FitWindows(c.points, c.fits)
	c.regPositions = polyn.Blend(c.points, c.fits, c.regPositions)
	if len(c.regPositions) != n {
		panic(fmt.Sprintf("regression produced %d positions for %d inputs", len(c.regPositions), n))
	}
}

// computeRegWidths denoises input widths with a fixed 3-tap kernel.
func (c *Curve) computeRegWidths() {
	if len(c.inputs) == 0 {
		panic("cannot regress widths without input samples")
	}
	c.regWidths = smoothWidths(c.inputs, c.regWidths)
}

// smoothWidths blends every width with its neighbours: 25%/50%/25% for
// interior samples, 67%/33% at the ends. A single sample keeps its width.
// Results are appended to out[:0].
func smoothWidths(inputs []InputSample, out []float64) []float64 {
	n := len(inputs)
	out = out[:0]
	if n == 1 {
		return append(out, inputs[0].Width)
	}
	out = append(out, 0.67*inputs[0].Width+0.33*inputs[1].Width)
	for i := 1; i < n-1; i++ {
		w := 0.25*inputs[i-1].Width + 0.50*inputs[i].Width + 0.25*inputs[i+1].Width
		out = append(out, w)
	}
	return append(out, 0.67*inputs[n-1].Width+0.33*inputs[n-2].Width)
}
