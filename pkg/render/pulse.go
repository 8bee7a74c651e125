package render

import "math"

// Pulse returns a triangle wave over t milliseconds with the given period:
// 1 at the start of a period, 0 at its middle, back to 1 at its end.
func Pulse(tMs int64, periodMs int64) float64 {
	if periodMs <= 0 {
		return 0
	}
	phase := tMs % periodMs
	if phase < 0 {
		phase += periodMs
	}
	half := float64(periodMs) / 2
	return math.Abs(float64(phase)-half) / half
}
