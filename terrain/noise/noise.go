// Package noise implements the coherent 3D noise samplers used to shape
// terrain height and colour variation. The legacy Field reproduces the
// generator that shipped with the original renderer bit for bit; the other
// samplers in this package are vetted replacement candidates that trade exact
// world parity for better-studied noise characteristics.
package noise

import (
	"math"

	"github.com/dm-vev/strata/terrain/internal/mathx"
	"github.com/go-gl/mathgl/mgl64"
)

// Sampler produces a coherent noise value for a 3D coordinate. Implementations
// must be pure: for a fixed sampler, identical coordinates always yield an
// identical value, from any goroutine, any number of times.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// Field is the legacy seed-offset gradient noise generator. The seed is fixed
// at construction and is the only state the generator carries, so a single
// Field may be shared freely between goroutines generating chunks in
// parallel, and independent Fields (one per world or save) never interfere.
type Field struct {
	seed float64
}

// New creates a Field producing noise derived from the seed. Fields with the
// same seed produce identical output for identical coordinates.
func New(seed float64) *Field {
	return &Field{seed: seed}
}

// Seed returns the seed the field was constructed with.
func (f *Field) Seed() float64 {
	return f.seed
}

// Sample returns the noise value at the coordinates passed. The nominal range
// is [-1, 1], but the final doubling pushes extremes slightly past it: grid
// scans observe roughly [-1.18, 1.17]. Callers that need the nominal range
// must clamp themselves.
//
// Only x and z are offset by the seed; y is not. Changing that would alter
// every previously generated world, so the asymmetry stays.
func (f *Field) Sample(x, y, z float64) float64 {
	x += f.seed
	z += f.seed

	xi, xf := mathx.Split(x)
	yi, yf := mathx.Split(y)
	zi, zf := mathx.Split(z)

	// One gradient per corner of the surrounding lattice cell, dotted with
	// the offset from that corner to the sample point.
	var d [8]float64
	for c := range d {
		i := float64(c & 1)
		j := float64(c >> 1 & 1)
		k := float64(c >> 2 & 1)
		g := gradient(xi+i, yi+j, zi+k)
		d[c] = g.Dot(mgl64.Vec3{xf - i, yf - j, zf - k})
	}

	u := mathx.SmoothQuintic(xf)
	v := mathx.SmoothQuintic(yf)
	w := mathx.SmoothQuintic(zf)

	x00 := mathx.Lerp(u, d[0], d[1])
	x10 := mathx.Lerp(u, d[2], d[3])
	x01 := mathx.Lerp(u, d[4], d[5])
	x11 := mathx.Lerp(u, d[6], d[7])
	y0 := mathx.Lerp(v, x00, x10)
	y1 := mathx.Lerp(v, x01, x11)
	return 2 * mathx.Lerp(w, y0, y1)
}

// gradient derives the unit gradient vector anchored at a lattice corner from
// a hash of the corner coordinates. The hash value picks a point on the unit
// sphere via spherical angles θ = h·2π, φ = h·π.
func gradient(x, y, z float64) mgl64.Vec3 {
	h := hash(x + hash(y+hash(z)))
	theta := 2 * math.Pi * h
	phi := math.Pi * h
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{math.Cos(theta) * sinPhi, math.Sin(theta) * sinPhi, math.Cos(phi)}
}

// hash is the stateless scalar hash frac(sin(n)·10000) chained across lattice
// coordinates by gradient. It is an ad-hoc approximation of a permutation
// table, kept because replacing it changes every generated world.
func hash(n float64) float64 {
	s := math.Sin(n) * 10000
	return s - math.Floor(s)
}

var _ Sampler = (*Field)(nil)
