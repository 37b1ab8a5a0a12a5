// Package heightmap derives per-chunk column heights from a noise sampler.
// Meshing, painting and chunk streaming belong to the renderer; this package
// owns only the deterministic heights both sides read.
package heightmap

import (
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/dm-vev/strata/terrain/noise"
)

// Config holds the tunable parameters for a heightfield Builder.
type Config struct {
	// Sampler provides the coherent noise driving the terrain shape. It must
	// not be nil.
	Sampler noise.Sampler
	// ChunkSize is the number of columns along each side of a chunk. If set
	// to 0 or lower, 16 is used.
	ChunkSize int
	// Scale is the horizontal frequency applied to world coordinates before
	// sampling. If 0, 1/32 is used.
	Scale float64
	// Amplitude scales the sampler output into world-space height units. If
	// 0, 8 is used.
	Amplitude float64
	// Base is the elevation added to every column.
	Base float64
	// Log is the logger used by the builder. If nil, slog.Default() is used.
	Log *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = 16
	}
	if c.Scale == 0 {
		c.Scale = 1.0 / 32
	}
	if c.Amplitude == 0 {
		c.Amplitude = 8
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

// Chunk is one generated tile of column heights, laid out row by row along z.
type Chunk struct {
	X, Z    int32
	Size    int
	Heights []float64
}

// At returns the height of the column at local coordinates within the chunk.
func (c *Chunk) At(x, z int) float64 {
	return c.Heights[z*c.Size+x]
}

// Builder produces chunk heightfields from a sampler. Column heights are
// memoised, so columns requested repeatedly (chunk rebuilds, collision
// queries) are sampled once. The memo is an optimisation only: results are a
// pure function of the configuration.
type Builder struct {
	conf Config

	mu   sync.Mutex
	memo *intintmap.Map
}

// NewBuilder creates a Builder using fields of conf.
func NewBuilder(conf Config) (*Builder, error) {
	if conf.Sampler == nil {
		return nil, errors.New("heightmap: sampler must not be nil")
	}
	return &Builder{
		conf: conf.withDefaults(),
		memo: intintmap.New(1024, 0.6),
	}, nil
}

// HeightAt returns the terrain height of the column at the world coordinates
// passed.
func (b *Builder) HeightAt(x, z int64) float64 {
	key := packColumn(x, z)
	b.mu.Lock()
	if bits, ok := b.memo.Get(key); ok {
		b.mu.Unlock()
		return math.Float64frombits(uint64(bits))
	}
	b.mu.Unlock()

	h := b.conf.Base + b.conf.Amplitude*b.conf.Sampler.Sample(float64(x)*b.conf.Scale, 0, float64(z)*b.conf.Scale)

	b.mu.Lock()
	b.memo.Put(key, int64(math.Float64bits(h)))
	b.mu.Unlock()
	return h
}

// BuildChunk samples the full column grid of the chunk at the chunk
// coordinates passed.
func (b *Builder) BuildChunk(cx, cz int32) *Chunk {
	size := b.conf.ChunkSize
	ch := &Chunk{X: cx, Z: cz, Size: size, Heights: make([]float64, size*size)}
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			wx := int64(cx)*int64(size) + int64(x)
			wz := int64(cz)*int64(size) + int64(z)
			ch.Heights[z*size+x] = b.HeightAt(wx, wz)
		}
	}
	return ch
}

// packColumn packs two column coordinates into one memo key. Columns keep
// their identity within the 32-bit coordinate range worlds actually use.
func packColumn(x, z int64) int64 {
	return int64(uint64(uint32(x))<<32 | uint64(uint32(z)))
}
