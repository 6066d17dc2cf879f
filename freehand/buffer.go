package freehand

// appendInputSample always accepts the first sample of a fit. Subsequent
// samples are accepted only if they are farther than 0.1⋅resolution away
// from the previously accepted sample. Otherwise they would produce
// degenerate spans for the regression.
func (c *Curve) appendInputSample(in InputSample) {
	if n := len(c.inputs); n > 0 {
		ds := c.inputs[n-1].Position.Dist(in.Position)
		if ds <= dedupFactor*in.Resolution {
			tracer().Debugf("dropping input sample %s, too close to predecessor", ptstring(in.Position))
			return
		}
	}
	c.inputs = append(c.inputs, in)
}
