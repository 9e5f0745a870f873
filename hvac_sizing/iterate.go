package hvac_sizing

import (
	"math"
)

// Result of a fixed-point iteration
type FixedPoint struct {
	Value      float64
	Converged  bool
	Iterations int
}

/*
Iterate x = step(x) until the relative change falls within the tolerance.

	Args:
		initial: starting value
		step: map from the previous iterate to the next one
		tolerance: relative change at convergence, -
		max_iters: iteration cap

	Returns:
		last iterate and whether it converged

	Notes:
		When the previous iterate is zero the absolute change is used.
*/
func IterateToConvergence(initial float64, step func(float64) float64, tolerance float64, max_iters int) FixedPoint {
	x := initial
	for i := 1; i <= max_iters; i++ {
		next := step(x)

		delta := math.Abs(next - x)
		if x != 0 {
			delta /= math.Abs(x)
		}
		x = next

		if delta <= tolerance {
			return FixedPoint{Value: x, Converged: true, Iterations: i}
		}
	}
	return FixedPoint{Value: x, Converged: false, Iterations: max_iters}
}
