package qsearch

import "fmt"

/*
Reflect is the oracle gate. It negates the amplitude of every state the
oracle marks and leaves the rest alone, so every probability is unchanged.
*/
func Reflect(v *AmplitudeVector, oracle Oracle) (*AmplitudeVector, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}

	out := v.Amplitudes()
	for i := range out {
		if oracle.Evaluate(i) {
			out[i] = -out[i]
		}
	}

	return NewAmplitudeVector(out...), nil
}

/*
InvertAboutMean is the diffusion gate. With μ the mean amplitude, every
amplitude a becomes 2μ − a.
*/
func InvertAboutMean(v *AmplitudeVector) (*AmplitudeVector, error) {
	n := v.Size()
	if n == 0 {
		return nil, fmt.Errorf("invert about mean: %w", ErrEmptyVector)
	}

	out := v.Amplitudes()
	mean := Mean(v)

	for i, a := range out {
		out[i] = 2*mean - a
	}

	return NewAmplitudeVector(out...), nil
}

// Mean is the arithmetic mean of the amplitudes, 0 for an empty vector.
func Mean(v *AmplitudeVector) float64 {
	if v.Size() == 0 {
		return 0
	}

	var sum float64
	for _, a := range v.amplitudes {
		sum += a
	}

	return sum / float64(v.Size())
}
