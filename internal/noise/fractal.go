package noise

// Octaves configures a fractal summation.
type Octaves struct {
	Frequency   float64 // input scale of the first octave
	Amplitude   float64 // output weight of the first octave
	Count       int     // number of octaves, >= 1
	Persistence float64 // amplitude multiplier per octave
	Lacunarity  float64 // frequency multiplier per octave
}

// MaxAmplitude returns the summed octave weights, Amplitude * sum(Persistence^i).
func (o Octaves) MaxAmplitude() float64 {
	amplitude := o.Amplitude
	total := 0.0
	for range o.Count {
		total += amplitude
		amplitude *= o.Persistence
	}
	return total
}

// Fractal sums o.Count octaves of s at (x, y, z).
//
// The weighted sum is divided by the total weight, remapped to [-1,1] and
// then multiplied by the total weight again. The result is therefore bounded
// by +-MaxAmplitude, not by +-1.
func Fractal(s Sampler, x, y, z float64, o Octaves) float64 {
	frequency := o.Frequency
	amplitude := o.Amplitude
	value := 0.0
	maxAmplitude := 0.0

	for range o.Count {
		value += amplitude * s.Sample(x*frequency, y*frequency, z*frequency)
		maxAmplitude += amplitude

		frequency *= o.Lacunarity
		amplitude *= o.Persistence
	}

	value /= maxAmplitude
	value = 2.0*value - 1.0

	return value * maxAmplitude
}
