package freehand

import (
	"fmt"
	"math"

	"github.com/npillmayer/strokefit"
)

// computeKnots derives the knots from the denoised positions and widths:
//
//  1. remove positions closer than the resolution to the previous knot
//  2. compute supplementary angles
//  3. merge pairs of nearby knots which together form one corner
//  4. re-compute angles and decide which knots are corners
func (c *Curve) computeKnots() {
	n := len(c.inputs)
	if n == 0 || len(c.regPositions) != n || len(c.regWidths) != n {
		panic(fmt.Sprintf("knots need %d positions and widths, have %d and %d",
			n, len(c.regPositions), len(c.regWidths)))
	}
	resolution := math.Max(10*eps, c.inputs[0].Resolution)
	c.knots, c.dists = dedupKnots(c.regPositions, c.regWidths, resolution, c.knots, c.dists)
	m := len(c.knots)
	computeAngles(c.knots)
	c.knots = mergeKnots(c.knots, c.dists)
	computeAngles(c.knots)
	tagCorners(c.knots, c.params.MaxSmoothKnotAngle)
	if m != len(c.knots) {
		tracer().Debugf("merged %d knots into %d", m, len(c.knots))
	}
}

// dedupKnots creates a knot for the first position and for every following
// position farther than resolution away from the latest knot. dists[i] is
// the distance between knots i and i+1. Knots and distances are appended to
// knots[:0] and dists[:0].
func dedupKnots(positions []strokefit.Pair, widths []float64, resolution float64,
	knots []Knot, dists []float64) ([]Knot, []float64) {
	knots = append(knots[:0], Knot{Position: positions[0], Width: widths[0]})
	dists = dists[:0]
	for i := 1; i < len(positions); i++ {
		last := knots[len(knots)-1].Position
		if ds := last.Dist(positions[i]); ds > resolution {
			knots = append(knots, Knot{Position: positions[i], Width: widths[i]})
			dists = append(dists, ds)
		}
	}
	return knots, dists
}

// computeAngles sets the supplementary angle of every knot. Angles of the
// end knots are 0 by convention.
func computeAngles(knots []Knot) {
	m := len(knots)
	for i := range knots {
		if i == 0 || i == m-1 {
			knots[i].Angle = 0
			continue
		}
		knots[i].Angle = strokefit.SupplementaryAngle(
			knots[i-1].Position, knots[i].Position, knots[i+1].Position)
	}
}

// mergeKnots replaces two knots B, C by a single one if they are close to
// each other compared to their outer neighbours A and D:
//
//	     B     C                 B or C
//	      o---o                   o
//	     /    |                  /|
//	    /     |         =>      / |
//	   /      |                /  |
//	A o       o D           A o   o D
//
// The merge criterion is r⋅BC < AB and r⋅BC < CD, with dists taken from the
// unmerged knots. The knot with the larger angle survives. For r > 2 a merge
// cannot produce coincident knots: a distance d shrinks to at most (r-2)⋅d.
//
// Knots are compacted in place, left to right in a single pass; the first
// knot and the last two knots are never merge candidates. Returns the
// shortened slice.
func mergeKnots(knots []Knot, dists []float64) []Knot {
	m := len(knots)
	if len(dists) != m-1 {
		panic(fmt.Sprintf("%d knots need %d distances, have %d", m, m-1, len(dists)))
	}
	read, write := 0, 0
	for read+3 < m {
		read++
		write++
		// B = knots[read], C = knots[read+1]; A may have been overwritten already
		b, c := knots[read], knots[read+1]
		ab, bc, cd := dists[read-1], dists[read], dists[read+1]
		if mergeRatio*bc < ab && mergeRatio*bc < cd {
			if b.Angle < c.Angle {
				knots[write] = c
			} else {
				knots[write] = b
			}
			tracer().Debugf("merging knots %s and %s", ptstring(b.Position), ptstring(c.Position))
			read++
		} else {
			knots[write] = b
		}
	}
	// copy the last one or two knots, depending on the last iteration
	for read+1 < m {
		read++
		write++
		knots[write] = knots[read]
	}
	return knots[:write+1]
}

// tagCorners classifies knots with an angle above maxSmoothAngle as corners.
// End knots are always corners.
func tagCorners(knots []Knot, maxSmoothAngle float64) {
	m := len(knots)
	for i := range knots {
		knots[i].IsCorner = i == 0 || i == m-1 || knots[i].Angle > maxSmoothAngle
	}
}
