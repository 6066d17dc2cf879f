package freehand

import (
	"github.com/npillmayer/strokefit"
)

// Buffer layout for subdividing the span between knots C and D. Knots sit
// at even offsets, values of the current step are inserted at odd offsets:
//
//	init:            |   |   |#A#|#B#|#C#|#D#|#E#|#F#|   |   |
//	1st spread out:  |#A#|   |#B#|   |#C#|   |#D#|   |#E#|   |#F#|
//	1st compute:     |#A#|   |#B#|:a:|#C#|:b:|#D#|:c:|#E#|   |#F#|
//	2nd spread out:  |#B#|   |:a:|   |#C#|   |:b:|   |#D#|   |:c:|   |#E#|
//	2nd compute:     |#B#|   |:a:|.d.|#C#|.e.|:b:|.f.|#D#|.g.|:c:|   |#E#|
//	3rd compute:     |:a:|   |.d.| h |#C#| i |.e.| j |:b:| k |.f.| l |#D#| m |.g.|   |:c:|
//
// The unused slots keep index arithmetic uniform across steps. After s
// steps the buffer has 9 + 2^s slots, C at index 4 and D at index 4 + 2^s.
const (
	spanBufferSize = 9 + 1<<subdivisions
	spanStart      = 4
	spanEnd        = spanStart + 1<<subdivisions
)

// fourPoint is the interpolating 4-point scheme of Dyn, Levin and Gregory:
// the new value between p2 and p3, given their neighbours p1 and p4.
func fourPoint[T ~float64 | ~complex128](p1, p2, p3, p4 T) T {
	return (p2+p3)/2 - tension*(p1+p4-p2-p3)
}

// subdivider refines a 6-knot context with ping-pong buffers, re-used for
// every knot span.
type subdivider struct {
	pos, nextPos [spanBufferSize]strokefit.Pair
	wid, nextWid [spanBufferSize]float64
	size         int // used slots of pos and wid
}

// refine runs the subdivision steps for the span between ctx[2] = C and
// ctx[3] = D. Results are at Pos(spanStart) … Pos(spanEnd).
func (sd *subdivider) refine(ctx [6]Knot) {
	sd.size = 10
	for k, knot := range ctx {
		sd.pos[k+2] = knot.Position
		sd.wid[k+2] = knot.Width
	}
	for step := 0; step < subdivisions; step++ {
		p := sd.size - 4 // values worth keeping, starting at slot 2
		// spread out
		for k := 0; k < p; k++ {
			sd.nextPos[2*k] = sd.pos[k+2]
			sd.nextWid[2*k] = sd.wid[k+2]
		}
		// insert between knots with two neighbours on either side
		for k := 0; k < p-3; k++ {
			k1, k2, k25, k3, k4 := 2*k, 2*k+2, 2*k+3, 2*k+4, 2*k+6
			sd.nextPos[k25] = fourPoint(sd.nextPos[k1], sd.nextPos[k2], sd.nextPos[k3], sd.nextPos[k4])
			sd.nextWid[k25] = fourPoint(sd.nextWid[k1], sd.nextWid[k2], sd.nextWid[k3], sd.nextWid[k4])
		}
		sd.pos, sd.nextPos = sd.nextPos, sd.pos
		sd.wid, sd.nextWid = sd.nextWid, sd.wid
		sd.size = 2*p - 1
	}
}

// Pos is the subdivided position at buffer index k.
func (sd *subdivider) Pos(k int) strokefit.Pair {
	return sd.pos[k]
}

// Width is the subdivided width at buffer index k.
func (sd *subdivider) Width(k int) float64 {
	return sd.wid[k]
}

// neighbour steps from knot i in direction dir (±1), saturating at corners:
// looking past a corner repeats the corner. End knots are corners, so the
// result is always in range.
func neighbour(knots []Knot, i, dir int) int {
	if knots[i].IsCorner {
		return i
	}
	return i + dir
}

// spanContext gathers knots A … F for the span between C = knots[i] and
// D = knots[i+1].
func spanContext(knots []Knot, i int) [6]Knot {
	iC, iD := i, i+1
	iB := neighbour(knots, iC, -1)
	iA := neighbour(knots, iB, -1)
	iE := neighbour(knots, iD, +1)
	iF := neighbour(knots, iE, +1)
	return [6]Knot{knots[iA], knots[iB], knots[iC], knots[iD], knots[iE], knots[iF]}
}
