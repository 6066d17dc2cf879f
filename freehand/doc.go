// Package freehand fits smooth, variable-width curves to freehand pointer
// input.
/*

A fit session consumes a live stream of input samples, each carrying a
position, a pen width and the resolution of the input device. After every
sample the session re-derives, from the whole input seen so far:

  - denoised positions, by fitting quadratic curves to sliding windows of
    five input samples and blending the fits with a bell-shaped weight;
  - denoised widths, by a fixed 3-tap kernel;
  - knots, by removing duplicate positions, merging pairs of nearby knots
    which together form a corner, and classifying sharp knots as corners;
  - samples, by subdividing every span between two knots with the 4-point
    scheme of Dyn, Levin and Gregory (tension 1/16, three steps). Corners are
    boundaries of subdivision. At interior corners extra samples sweep the
    tangent around the corner, producing a round join when rendered.

Samples carry arclength, tangent and normal and are meant to be handed to a
renderer for triangulation. The fit is local and streaming; it is not
globally optimal and does not handle closed curves.

Usage

Clients create one Curve per stroke and feed it input samples while the
stroke is drawn (package qualifiers omitted):

   curve := MustNew(DefaultParams())
   curve.BeginFit()
   for _, in := range pointerEvents {
       curve.ContinueFit(InputSample{Position: P(in.X, in.Y), Width: in.Pressure * 5, Resolution: 1})
       redraw(curve.Samples())
   }
   curve.EndFit()

A Curve is not safe for concurrent use. Every call to ContinueFit re-computes
all derived state, so the cost of a call grows with the length of the
stroke.

Contract violations, such as asking for a knot index out of range, panic.
Numerical degeneracies never do: they are resolved locally, e.g. by a
default tangent of (1,0).


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package freehand
