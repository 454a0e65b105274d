// Package physics provides the vector type and bounding-box tests used by the simulation.
package physics

import "math"

// Clamp limits val to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
