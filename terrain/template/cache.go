package template

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidDimension is returned when a template is requested with a zero or
// negative size or resolution.
var ErrInvalidDimension = errors.New("template: size and resolution must be positive")

// ConstructionError reports why a template could not be built for a key. It
// wraps the underlying cause, so errors.Is(err, ErrInvalidDimension) works.
type ConstructionError struct {
	Key Key
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct template (size %d, resolution %d): %v", e.Key.Size, e.Key.Resolution, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Config holds the tunable parameters for a template Cache. The zero value is
// usable.
type Config struct {
	// Log is the logger used for cache events. If nil, slog.Default() is
	// used.
	Log *slog.Logger
	// OnRelease is invoked exactly once per template when the cache is
	// cleared. Renderers use it to free the GPU-side buffers backing the
	// geometry and material handles. May be nil.
	OnRelease func(*Template)
}

// Cache is a keyed registry of lazily constructed, shared chunk templates.
// The registry is guarded by a mutex, so templates may be requested from the
// world-building goroutine and its workers alike; the templates themselves
// are shared read-only by all callers until Clear revokes them.
type Cache struct {
	conf    Config
	metrics *Metrics

	mu        sync.RWMutex
	templates map[Key]*Template
}

// NewCache creates an empty Cache using fields of conf.
func NewCache(conf Config) *Cache {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	return &Cache{
		conf:      conf,
		metrics:   NewMetrics(),
		templates: make(map[Key]*Template),
	}
}

// GetOrCreate returns the shared template for the chunk shape passed,
// constructing and storing it on first request. Repeat calls with the same
// size and resolution return the same *Template, so at most one geometry and
// material pair exists per distinct shape.
//
// The zone tag is accepted for logging only. Zone identity is excluded from
// the key on purpose: a single universal template serves every biome of a
// given shape.
func (c *Cache) GetOrCreate(zone string, size, resolution int) (*Template, error) {
	if size <= 0 || resolution <= 0 {
		return nil, &ConstructionError{Key: Key{Size: size, Resolution: resolution}, Err: ErrInvalidDimension}
	}
	k := Key{Size: size, Resolution: resolution}

	c.mu.RLock()
	t, ok := c.templates[k]
	c.mu.RUnlock()
	if ok {
		c.metrics.IncHits()
		return t, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.templates[k]; ok {
		c.metrics.IncHits()
		return t, nil
	}
	t = newTemplate(k, c.conf.OnRelease)
	c.templates[k] = t
	c.metrics.IncBuilds()
	c.conf.Log.Debug("Template built.", "size", size, "resolution", resolution, "zone", zone)
	return t, nil
}

// Clear releases every cached geometry and material exactly once and empties
// the registry. Clearing an empty cache is a no-op. Templates handed out
// before the call are revoked: the next GetOrCreate for a previously seen key
// builds a fresh template rather than resurrecting a released handle.
func (c *Cache) Clear() {
	c.mu.Lock()
	templates := c.templates
	c.templates = make(map[Key]*Template)
	c.mu.Unlock()

	for _, t := range templates {
		t.Release()
		c.metrics.IncReleases()
	}
	if len(templates) > 0 {
		c.conf.Log.Debug("Template cache cleared.", "released", len(templates))
	}
}

// Len reports the number of distinct templates currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return c.metrics.Snapshot()
}

// Texture is the retired shared-texture handle type, kept only so existing
// callers of Cache.Texture continue to compile.
type Texture struct {
	ID uuid.UUID
}

// Texture previously returned a cached shared texture for chunk materials.
//
// Deprecated: texture caching moved into the renderer's asset pipeline. The
// method always returns nil; callers must treat the nil result as absence,
// not as an error.
func (c *Cache) Texture(string) *Texture {
	return nil
}
