package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Parameters matching the permutation-table Perlin setups commonly used for
// chunk heightmaps.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// Perlin samples classic permutation-table Perlin noise. It is the main
// replacement candidate for Field: the same lattice-gradient idea with a
// vetted hash, but a different output, so swapping it in regenerates every
// world from scratch.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin sampler seeded with the value passed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

// Sample returns the Perlin noise value at the coordinates passed.
func (p *Perlin) Sample(x, y, z float64) float64 {
	return p.p.Noise3D(x, y, z)
}

// OpenSimplex samples OpenSimplex noise, which avoids the axis-aligned
// artefacts of cubic-lattice gradient noise at a slightly higher cost per
// sample.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex creates an OpenSimplex sampler seeded with the value passed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed)}
}

// Sample returns the OpenSimplex noise value at the coordinates passed.
func (o *OpenSimplex) Sample(x, y, z float64) float64 {
	return o.n.Eval3(x, y, z)
}

var (
	_ Sampler = (*Perlin)(nil)
	_ Sampler = (*OpenSimplex)(nil)
)
