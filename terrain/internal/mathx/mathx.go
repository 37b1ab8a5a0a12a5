// Package mathx contains small deterministic math helpers shared by the noise
// and heightmap packages. All functions are pure and portable: no package
// state, no randomness.
package mathx

import "math"

// Split separates v into its floored integer part and fractional remainder.
// The remainder is always in [0, 1), also for negative v.
func Split(v float64) (base, frac float64) {
	base = math.Floor(v)
	return base, v - base
}

// Frac returns the fractional part of v, always in [0, 1).
func Frac(v float64) float64 {
	return v - math.Floor(v)
}

// Lerp interpolates linearly between a and b using weight t.
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// SmoothQuintic eases t with the quintic smoothstep 6t^5 - 15t^4 + 10t^3, keeping
// interpolation continuous in both value and derivative across lattice cell
// boundaries.
func SmoothQuintic(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}
