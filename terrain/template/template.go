// Package template caches the geometry and material pairs shared by terrain
// chunks, so that building a chunk never allocates fresh render resources for
// a shape the renderer has already seen.
package template

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Key identifies a template by chunk shape. Equality is structural. Zone
// identity is deliberately absent: one template serves every biome of the
// same shape.
type Key struct {
	// Size is the side length of the chunk plane in world units.
	Size int
	// Resolution is the number of quad segments along each side.
	Resolution int
}

// Geometry is a shared plane mesh handle. Positions and normals are laid out
// row by row along z; Indices describes two counter-clockwise triangles per
// quad.
type Geometry struct {
	ID        uuid.UUID
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	Indices   []uint32
}

// Material holds the surface parameters shared by every chunk built from the
// template. Per-chunk colour variation is painted into vertex colours by the
// renderer, not baked into the material.
type Material struct {
	ID           uuid.UUID
	Roughness    float64
	Metalness    float64
	FlatShading  bool
	VertexColors bool
}

// Template pairs a geometry and a material handle for one chunk shape. Every
// chunk requesting the same Key shares the same Template by reference;
// callers may compare handles to detect sharing. Ownership is shared
// read-only until the cache releases the template.
type Template struct {
	Key      Key
	Geometry *Geometry
	Material *Material

	releaseOnce sync.Once
	onRelease   func(*Template)
}

// Release invokes the template's release hook. Repeated calls are no-ops: the
// hook runs exactly once per template, so render resources are never freed
// twice.
func (t *Template) Release() {
	t.releaseOnce.Do(func() {
		if t.onRelease != nil {
			t.onRelease(t)
		}
	})
}

// newTemplate builds the plane mesh and material for the key passed. The key
// must already be validated.
func newTemplate(k Key, onRelease func(*Template)) *Template {
	segments := k.Resolution
	side := segments + 1
	step := float64(k.Size) / float64(segments)
	half := float64(k.Size) / 2

	g := &Geometry{
		ID:        uuid.New(),
		Positions: make([]mgl64.Vec3, 0, side*side),
		Normals:   make([]mgl64.Vec3, 0, side*side),
		Indices:   make([]uint32, 0, segments*segments*6),
	}
	up := mgl64.Vec3{0, 1, 0}
	for zi := 0; zi < side; zi++ {
		for xi := 0; xi < side; xi++ {
			g.Positions = append(g.Positions, mgl64.Vec3{float64(xi)*step - half, 0, float64(zi)*step - half})
			g.Normals = append(g.Normals, up)
		}
	}
	for zi := 0; zi < segments; zi++ {
		for xi := 0; xi < segments; xi++ {
			a := uint32(zi*side + xi)
			b := a + 1
			c := a + uint32(side)
			d := c + 1
			g.Indices = append(g.Indices, a, c, b, b, c, d)
		}
	}

	m := &Material{
		ID:           uuid.New(),
		Roughness:    1,
		FlatShading:  true,
		VertexColors: true,
	}
	return &Template{Key: k, Geometry: g, Material: m, onRelease: onRelease}
}
