package qsearch

import "errors"

var (
	// ErrNotPowerOfTwo is returned when a transform or search needs 2^n states.
	ErrNotPowerOfTwo = errors.New("size is not a positive power of two")
	ErrEmptyVector   = errors.New("amplitude vector is empty")
	ErrSizeMismatch  = errors.New("size mismatch")

	// ErrIndexOutOfRange is returned for basis or answer indices outside [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNilOracle       = errors.New("oracle is nil")

	// ErrZeroProbability means there is nothing to sample from.
	ErrZeroProbability  = errors.New("total probability is zero")
	ErrInvalidAmplitude = errors.New("amplitude is NaN or infinite")
	ErrInvalidShots     = errors.New("shots must be positive")
)

/*
isPowerOfTwo reports whether n is a positive power of two.
*/
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
