package heightmap_test

import (
	"testing"

	"github.com/dm-vev/strata/terrain/heightmap"
	"github.com/dm-vev/strata/terrain/noise"
)

func TestBuilderRequiresSampler(t *testing.T) {
	t.Parallel()

	if _, err := heightmap.NewBuilder(heightmap.Config{}); err == nil {
		t.Fatal("expected an error for a nil sampler")
	}
}

func TestBuilderDeterminism(t *testing.T) {
	t.Parallel()

	conf := heightmap.Config{Sampler: noise.New(0.42), ChunkSize: 8, Scale: 1.0 / 16, Amplitude: 12, Base: 40}
	a, err := heightmap.NewBuilder(conf)
	if err != nil {
		t.Fatalf("create builder: %v", err)
	}
	b, err := heightmap.NewBuilder(conf)
	if err != nil {
		t.Fatalf("create builder: %v", err)
	}

	for _, pos := range [][2]int32{{0, 0}, {-1, 2}, {5, -3}} {
		ca := a.BuildChunk(pos[0], pos[1])
		cb := b.BuildChunk(pos[0], pos[1])
		if len(ca.Heights) != 8*8 {
			t.Fatalf("chunk has %d columns, want %d", len(ca.Heights), 8*8)
		}
		for i := range ca.Heights {
			if ca.Heights[i] != cb.Heights[i] {
				t.Fatalf("chunk %v column %d diverged between identical builders: %v != %v", pos, i, ca.Heights[i], cb.Heights[i])
			}
		}
	}
}

// The memo must be invisible: a column read directly has to match the same
// column read through a chunk build, before and after the memo is warm.
func TestBuilderMemoConsistency(t *testing.T) {
	t.Parallel()

	b, err := heightmap.NewBuilder(heightmap.Config{Sampler: noise.New(0.42), ChunkSize: 4})
	if err != nil {
		t.Fatalf("create builder: %v", err)
	}

	direct := b.HeightAt(5, 6)
	ch := b.BuildChunk(1, 1)
	if got := ch.At(1, 2); got != direct {
		t.Fatalf("chunk column (5, 6) = %v, direct read = %v", got, direct)
	}
	if again := b.HeightAt(5, 6); again != direct {
		t.Fatalf("memoised read %v differs from first read %v", again, direct)
	}
}

func TestBuilderNegativeCoordinates(t *testing.T) {
	t.Parallel()

	b, err := heightmap.NewBuilder(heightmap.Config{Sampler: noise.New(0.42), ChunkSize: 4})
	if err != nil {
		t.Fatalf("create builder: %v", err)
	}

	ch := b.BuildChunk(-2, -3)
	if got := ch.At(3, 0); got != b.HeightAt(-2*4+3, -3*4) {
		t.Fatal("negative chunk coordinates map to the wrong world columns")
	}
	// Distinct columns must keep distinct memo identities.
	if b.HeightAt(-1, 0) == b.HeightAt(0, -1) && b.HeightAt(-1, 0) == b.HeightAt(-1, -1) {
		t.Fatal("suspicious memo collisions for negative columns")
	}
}

func TestChunkAtIndexing(t *testing.T) {
	t.Parallel()

	b, err := heightmap.NewBuilder(heightmap.Config{Sampler: noise.New(0.42), ChunkSize: 3})
	if err != nil {
		t.Fatalf("create builder: %v", err)
	}
	ch := b.BuildChunk(0, 0)
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			if ch.At(x, z) != ch.Heights[z*3+x] {
				t.Fatalf("At(%d, %d) does not match the row-major layout", x, z)
			}
		}
	}
}
