package qsearch

import (
	"fmt"
	"math"
	"math/bits"
)

/*
Hadamard applies the Walsh-Hadamard transform to v and returns the result.

The transform is H[i][j] = (1/√N)·(−1)^popcount(i AND j) for any power-of-two
N. It is computed with the butterfly decomposition: one pass per qubit pairs
each index i with i|bit and replaces the pair (a, b) with (a+b, a−b). The
1/√N factor is applied once at the end, which keeps the intermediate sums
exact for ±1 inputs.

H is its own inverse and preserves total probability.
*/
func Hadamard(v *AmplitudeVector) (*AmplitudeVector, error) {
	n := v.Size()
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("hadamard over %d states: %w", n, ErrNotPowerOfTwo)
	}

	out := v.Amplitudes()

	for bit := 1; bit < n; bit <<= 1 {
		for i := 0; i < n; i++ {
			if i&bit != 0 {
				continue
			}

			j := i | bit
			out[i], out[j] = out[i]+out[j], out[i]-out[j]
		}
	}

	scale := 1 / math.Sqrt(float64(n))
	for i := range out {
		out[i] *= scale
	}

	return NewAmplitudeVector(out...), nil
}

/*
HadamardMatrix builds the explicit n×n Walsh-Hadamard matrix.
*/
func HadamardMatrix(n int) ([][]float64, error) {
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("hadamard matrix of order %d: %w", n, ErrNotPowerOfTwo)
	}

	scale := 1 / math.Sqrt(float64(n))
	matrix := make([][]float64, n)

	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if bits.OnesCount(uint(i&j))%2 == 0 {
				matrix[i][j] = scale
			} else {
				matrix[i][j] = -scale
			}
		}
	}

	return matrix, nil
}

/*
Apply multiplies matrix by v. The matrix must be square with v.Size() rows.
*/
func Apply(matrix [][]float64, v *AmplitudeVector) (*AmplitudeVector, error) {
	n := v.Size()
	if len(matrix) != n {
		return nil, fmt.Errorf("matrix has %d rows for %d states: %w", len(matrix), n, ErrSizeMismatch)
	}

	out := make([]float64, n)

	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("matrix row %d has %d columns for %d states: %w", i, len(row), n, ErrSizeMismatch)
		}

		for j, h := range row {
			out[i] += h * v.amplitudes[j]
		}
	}

	return NewAmplitudeVector(out...), nil
}
