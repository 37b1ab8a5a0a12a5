package noise_test

import (
	"math"
	"sync"
	"testing"

	"github.com/dm-vev/strata/terrain/noise"
)

func TestFieldDeterminism(t *testing.T) {
	t.Parallel()

	a := noise.New(0.42)
	b := noise.New(0.42)
	for i := 0; i < 200; i++ {
		x := -10 + float64(i)*0.13
		y := -5 + float64(i)*0.07
		z := 10 - float64(i)*0.11
		first := a.Sample(x, y, z)
		if again := a.Sample(x, y, z); again != first {
			t.Fatalf("repeated sample at (%v, %v, %v) changed: %v != %v", x, y, z, again, first)
		}
		if other := b.Sample(x, y, z); other != first {
			t.Fatalf("second field with same seed diverged at (%v, %v, %v): %v != %v", x, y, z, other, first)
		}
	}
}

func TestFieldConcurrentSampling(t *testing.T) {
	t.Parallel()

	f := noise.New(0.42)
	coords := make([][3]float64, 256)
	want := make([]float64, len(coords))
	for i := range coords {
		coords[i] = [3]float64{float64(i) * 0.31, float64(i) * 0.17, float64(i) * -0.23}
		want[i] = f.Sample(coords[i][0], coords[i][1], coords[i][2])
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, c := range coords {
				if got := f.Sample(c[0], c[1], c[2]); got != want[i] {
					t.Errorf("concurrent sample at %v: got %v, want %v", c, got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
}

// The recorded constants were produced by this implementation with the Go
// standard library's math.Sin/math.Cos. They guard the hash, gradient and
// interpolation math against regression within Go; they are not cross-runtime
// values, since frac(sin(n)·10000) amplifies per-ULP differences between sin
// implementations far beyond the tolerance.
func TestFieldGoldenValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seed, x, y, z, want float64
	}{
		{0.42, 3, 0, 5, 0.73140915728039413},
		{0.42, -7.25, 1.5, 12.75, 0.32802540141722203},
		{1.0, 0.5, 0.5, 0.5, -0.033939485184636797},
	}
	for _, tc := range tests {
		got := noise.New(tc.seed).Sample(tc.x, tc.y, tc.z)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("seed %v sample(%v, %v, %v) = %.17g, want %.17g", tc.seed, tc.x, tc.y, tc.z, got, tc.want)
		}
	}
}

// With a zero seed and integer coordinates the sample point sits exactly on a
// lattice corner, so every corner offset along the interpolated path has zero
// weight and the result is exactly zero.
func TestFieldZeroAtLatticeCorners(t *testing.T) {
	t.Parallel()

	f := noise.New(0)
	for _, c := range [][3]float64{{0, 0, 0}, {2, 3, 4}, {-5, 7, -1}} {
		if got := f.Sample(c[0], c[1], c[2]); got != 0 {
			t.Errorf("sample at lattice corner %v = %v, want exactly 0", c, got)
		}
	}
}

// The final doubling pushes extremes past the nominal [-1, 1] range. The
// expected extremes were recorded from a reference scan over the same grid;
// the test both guards the math against regression and documents the actual
// bounds.
func TestFieldEmpiricalBounds(t *testing.T) {
	t.Parallel()

	const (
		wantMin = -1.1726384756502091
		wantMax = 1.1644140825491971
	)

	f := noise.New(0.42)
	min, max := math.Inf(1), math.Inf(-1)
	const n = 40
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				v := f.Sample(-8+float64(i)*0.41, -8+float64(j)*0.41, -8+float64(k)*0.41)
				min = math.Min(min, v)
				max = math.Max(max, v)
			}
		}
	}

	if math.Abs(min-wantMin) > 1e-6 || math.Abs(max-wantMax) > 1e-6 {
		t.Errorf("observed bounds [%v, %v], want [%v, %v]", min, max, wantMin, wantMax)
	}
	if min >= -1 || max <= 1 {
		t.Errorf("expected extremes beyond the nominal [-1, 1] range, got [%v, %v]", min, max)
	}
}

func TestFieldSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := noise.New(0.42)
	b := noise.New(0.43)
	diverged := false
	for i := 0; i < 50 && !diverged; i++ {
		x, z := float64(i)*0.37, float64(i)*0.53
		diverged = a.Sample(x, 0.5, z) != b.Sample(x, 0.5, z)
	}
	if !diverged {
		t.Fatal("fields with different seeds produced identical output")
	}
}

// Sampling one field must not disturb another; the seed is the only state a
// field carries.
func TestFieldInstancesIndependent(t *testing.T) {
	t.Parallel()

	ref := noise.New(7.5).Sample(1.3, 2.1, -0.7)

	a, b := noise.New(7.5), noise.New(99)
	for i := 0; i < 100; i++ {
		b.Sample(float64(i)*0.7, 0, float64(i)*0.9)
	}
	if got := a.Sample(1.3, 2.1, -0.7); got != ref {
		t.Fatalf("interleaved sampling changed result: got %v, want %v", got, ref)
	}
}
