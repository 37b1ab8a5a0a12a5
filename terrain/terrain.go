// Package terrain wires the noise, template and heightmap subsystems into a
// single engine consumed by a chunk-based renderer. The engine supplies noise
// samples and shared chunk templates; what gets placed on the terrain is the
// renderer's business.
package terrain

import (
	"github.com/dm-vev/strata/terrain/heightmap"
	"github.com/dm-vev/strata/terrain/noise"
	"github.com/dm-vev/strata/terrain/template"
)

// Engine bundles a noise sampler, a template cache and a heightfield builder
// configured for one world. Engines are independent: two engines with the
// same configuration produce identical worlds without sharing any state.
type Engine struct {
	conf      Config
	noise     noise.Sampler
	templates *template.Cache
	heights   *heightmap.Builder
}

// Noise returns the engine's sampler. The sampler is safe for unsynchronized
// concurrent use.
func (e *Engine) Noise() noise.Sampler {
	return e.noise
}

// Sample is shorthand for e.Noise().Sample.
func (e *Engine) Sample(x, y, z float64) float64 {
	return e.noise.Sample(x, y, z)
}

// Template returns the shared chunk template for the zone tag passed, using
// the engine's configured chunk size and resolution. The tag does not affect
// which template is returned.
func (e *Engine) Template(zone string) (*template.Template, error) {
	return e.templates.GetOrCreate(zone, e.conf.ChunkSize, e.conf.Resolution)
}

// Templates returns the engine's template cache.
func (e *Engine) Templates() *template.Cache {
	return e.templates
}

// Heights returns the engine's heightfield builder.
func (e *Engine) Heights() *heightmap.Builder {
	return e.heights
}

// Close clears the template cache, releasing every cached geometry and
// material exactly once.
func (e *Engine) Close() error {
	e.templates.Clear()
	return nil
}
