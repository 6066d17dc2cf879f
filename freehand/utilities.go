package freehand

import (
	"fmt"
	"math"

	"github.com/npillmayer/strokefit"
)

func ptstring(p strokefit.Pair) string {
	if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
		return "(<unknown>)"
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

func rad2deg(a float64) float64 {
	return a / strokefit.Deg2Rad
}
