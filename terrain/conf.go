package terrain

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dm-vev/strata/terrain/heightmap"
	"github.com/dm-vev/strata/terrain/noise"
	"github.com/dm-vev/strata/terrain/template"
	"github.com/pelletier/go-toml"
)

// Algorithm selects the noise implementation used for terrain synthesis.
type Algorithm string

const (
	// AlgorithmLegacy is the seed-offset gradient noise that shipped with the
	// original renderer. It is the only algorithm that reproduces previously
	// generated worlds bit for bit.
	AlgorithmLegacy Algorithm = "legacy"
	// AlgorithmPerlin is classic permutation-table Perlin noise. Selecting it
	// changes the output of every world.
	AlgorithmPerlin Algorithm = "perlin"
	// AlgorithmOpenSimplex is OpenSimplex noise, free of the axis-aligned
	// artefacts of cubic-lattice noise. Selecting it changes the output of
	// every world.
	AlgorithmOpenSimplex Algorithm = "opensimplex"
	// AlgorithmValue is hashed value noise, the cheapest option. Selecting it
	// changes the output of every world.
	AlgorithmValue Algorithm = "value"
)

// Config contains options for assembling a terrain Engine.
type Config struct {
	// Log is the Logger used for engine events. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed drives every sampler. 0 is a valid seed and yields a fixed world
	// layout.
	Seed int64
	// Algorithm picks the noise implementation. If empty, AlgorithmLegacy is
	// used.
	Algorithm Algorithm
	// Octaves layers the sampler into fractal noise when set above 1.
	Octaves int
	// Lacunarity is the per-octave frequency multiplier. If 0, 2 is used.
	Lacunarity float64
	// Persistence is the per-octave amplitude multiplier. If 0, 0.5 is used.
	Persistence float64
	// ChunkSize is the side length of a chunk, in world units and columns. If
	// set to 0 or lower, 16 is used.
	ChunkSize int
	// Resolution is the number of mesh segments along each side of a chunk
	// template. If set to 0 or lower, ChunkSize is used.
	Resolution int
	// Scale is the horizontal noise frequency of the heightfield.
	Scale float64
	// Amplitude scales noise into world-space height units.
	Amplitude float64
	// BaseHeight is the elevation added to every column.
	BaseHeight float64
	// OnRelease is invoked exactly once per chunk template when the template
	// cache is cleared. Renderers use it to free GPU-side resources. May be
	// nil.
	OnRelease func(*template.Template)
}

// New creates an Engine using fields of conf.
func (conf Config) New() (*Engine, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Algorithm == "" {
		conf.Algorithm = AlgorithmLegacy
	}
	if conf.ChunkSize <= 0 {
		conf.ChunkSize = 16
	}
	if conf.Resolution <= 0 {
		conf.Resolution = conf.ChunkSize
	}

	sampler, err := newSampler(conf)
	if err != nil {
		return nil, err
	}
	if conf.Octaves > 1 {
		sampler = noise.Octaves{
			Source:      sampler,
			Count:       conf.Octaves,
			Lacunarity:  conf.Lacunarity,
			Persistence: conf.Persistence,
		}
	}

	heights, err := heightmap.NewBuilder(heightmap.Config{
		Sampler:   sampler,
		ChunkSize: conf.ChunkSize,
		Scale:     conf.Scale,
		Amplitude: conf.Amplitude,
		Base:      conf.BaseHeight,
		Log:       conf.Log,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		conf:      conf,
		noise:     sampler,
		templates: template.NewCache(template.Config{Log: conf.Log, OnRelease: conf.OnRelease}),
		heights:   heights,
	}, nil
}

// newSampler builds the base sampler selected by the configuration.
func newSampler(conf Config) (noise.Sampler, error) {
	switch conf.Algorithm {
	case AlgorithmLegacy:
		return noise.New(float64(conf.Seed)), nil
	case AlgorithmPerlin:
		return noise.NewPerlin(conf.Seed), nil
	case AlgorithmOpenSimplex:
		return noise.NewOpenSimplex(conf.Seed), nil
	case AlgorithmValue:
		return noise.NewValue(conf.Seed), nil
	}
	return nil, fmt.Errorf("terrain: unknown noise algorithm %q", conf.Algorithm)
}

// UserConfig is the user configuration for a terrain engine. It holds the
// settings that shape generated worlds. UserConfig may be serialised and can
// be converted to a Config by calling UserConfig.Config().
type UserConfig struct {
	World struct {
		// Name is the world name. When Seed is 0, the seed is derived from
		// the name, so renaming a world regenerates it.
		Name string
		// Seed drives terrain synthesis directly when non-zero and takes
		// precedence over Name.
		Seed int64
	}
	Noise struct {
		// Algorithm selects the noise implementation: "legacy", "perlin",
		// "opensimplex" or "value". Anything but "legacy" changes the output
		// of every world.
		Algorithm string
		// Octaves layers the noise into fractal detail when set above 1.
		Octaves int
		// Lacunarity is the per-octave frequency multiplier.
		Lacunarity float64
		// Persistence is the per-octave amplitude multiplier.
		Persistence float64
		// Scale is the horizontal noise frequency of the heightfield.
		Scale float64
		// Amplitude scales noise into world-space height units.
		Amplitude float64
		// BaseHeight is the elevation added to every column.
		BaseHeight float64
	}
	Chunk struct {
		// Size is the side length of a chunk in world units and columns.
		Size int
		// Resolution is the number of mesh segments per template side.
		Resolution int
	}
}

// Config converts a UserConfig to a Config, so that it may be used for
// creating an Engine. An error is returned if the noise algorithm is unknown.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	seed := uc.World.Seed
	if seed == 0 && uc.World.Name != "" {
		seed = noise.SeedFromString(uc.World.Name)
	}

	alg := Algorithm(strings.ToLower(strings.TrimSpace(uc.Noise.Algorithm)))
	switch alg {
	case "":
		alg = AlgorithmLegacy
	case AlgorithmLegacy, AlgorithmPerlin, AlgorithmOpenSimplex, AlgorithmValue:
	default:
		return Config{}, fmt.Errorf("terrain: unknown noise algorithm %q", uc.Noise.Algorithm)
	}

	return Config{
		Log:         log,
		Seed:        seed,
		Algorithm:   alg,
		Octaves:     uc.Noise.Octaves,
		Lacunarity:  uc.Noise.Lacunarity,
		Persistence: uc.Noise.Persistence,
		ChunkSize:   uc.Chunk.Size,
		Resolution:  uc.Chunk.Resolution,
		Scale:       uc.Noise.Scale,
		Amplitude:   uc.Noise.Amplitude,
		BaseHeight:  uc.Noise.BaseHeight,
	}, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Name = "world"
	c.Noise.Algorithm = string(AlgorithmLegacy)
	c.Noise.Octaves = 1
	c.Noise.Lacunarity = 2
	c.Noise.Persistence = 0.5
	c.Noise.Scale = 1.0 / 32
	c.Noise.Amplitude = 8
	c.Chunk.Size = 16
	c.Chunk.Resolution = 16
	return c
}

// ReadConfig loads a UserConfig from the TOML file at the path passed. If the
// file does not exist yet, it is created with the default configuration.
func ReadConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
