package noise

import (
	"github.com/dm-vev/strata/terrain/internal/mathx"
	"github.com/segmentio/fasthash/fnv1a"
)

// Value is a hashed value-noise sampler: lattice corners carry pseudo-random
// scalars instead of gradient vectors, trilinearly blended with the same
// quintic easing as Field. It is the cheapest sampler in the package, with no
// trigonometry on the hot path, and its output is analytically bounded to
// [-1, 1).
type Value struct {
	seed uint64
}

// NewValue creates a value-noise sampler seeded with the value passed.
func NewValue(seed int64) *Value {
	return &Value{seed: uint64(seed)}
}

// Sample returns the value noise at the coordinates passed.
func (v *Value) Sample(x, y, z float64) float64 {
	xb, xf := mathx.Split(x)
	yb, yf := mathx.Split(y)
	zb, zf := mathx.Split(z)
	xi, yi, zi := int64(xb), int64(yb), int64(zb)

	var d [8]float64
	for c := range d {
		i := int64(c & 1)
		j := int64(c >> 1 & 1)
		k := int64(c >> 2 & 1)
		d[c] = v.lattice(xi+i, yi+j, zi+k)
	}

	u := mathx.SmoothQuintic(xf)
	s := mathx.SmoothQuintic(yf)
	w := mathx.SmoothQuintic(zf)

	x00 := mathx.Lerp(u, d[0], d[1])
	x10 := mathx.Lerp(u, d[2], d[3])
	x01 := mathx.Lerp(u, d[4], d[5])
	x11 := mathx.Lerp(u, d[6], d[7])
	y0 := mathx.Lerp(s, x00, x10)
	y1 := mathx.Lerp(s, x01, x11)
	return mathx.Lerp(w, y0, y1)
}

// lattice hashes a lattice corner together with the seed into a scalar in
// [-1, 1). FNV-1a chained over the coordinates decorrelates the axes well
// enough for terrain work.
func (v *Value) lattice(x, y, z int64) float64 {
	h := fnv1a.AddUint64(fnv1a.Init64, v.seed)
	h = fnv1a.AddUint64(h, uint64(x))
	h = fnv1a.AddUint64(h, uint64(y))
	h = fnv1a.AddUint64(h, uint64(z))
	return float64(h>>11)/(1<<52) - 1
}

var _ Sampler = (*Value)(nil)
