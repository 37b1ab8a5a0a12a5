package noise

// Octaves layers a base sampler at increasing frequency and decreasing
// amplitude and normalises the sum back into the base sampler's range. The
// zero values of Lacunarity and Persistence fall back to the usual 2 and 0.5.
type Octaves struct {
	// Source is the sampler layered per octave.
	Source Sampler
	// Count is the number of octaves summed. Values below 1 behave as 1.
	Count int
	// Lacunarity is the per-octave frequency multiplier.
	Lacunarity float64
	// Persistence is the per-octave amplitude multiplier.
	Persistence float64
}

// Sample returns the normalised octave sum at the coordinates passed.
func (o Octaves) Sample(x, y, z float64) float64 {
	count := o.Count
	if count < 1 {
		count = 1
	}
	lacunarity := o.Lacunarity
	if lacunarity == 0 {
		lacunarity = 2
	}
	persistence := o.Persistence
	if persistence == 0 {
		persistence = 0.5
	}

	var total, norm float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < count; i++ {
		total += o.Source.Sample(x*frequency, y*frequency, z*frequency) * amplitude
		norm += amplitude
		frequency *= lacunarity
		amplitude *= persistence
	}
	return total / norm
}

var _ Sampler = Octaves{}
