package qsearch

import "math"

// NewQubit returns the two-state vector alpha|0⟩ + beta|1⟩.
func NewQubit(alpha, beta float64) *AmplitudeVector {
	return NewAmplitudeVector(alpha, beta)
}

// Plus is H|0⟩ = (|0⟩ + |1⟩)/√2.
func Plus() *AmplitudeVector {
	return NewQubit(1/math.Sqrt2, 1/math.Sqrt2)
}

// Minus is H|1⟩ = (|0⟩ − |1⟩)/√2.
func Minus() *AmplitudeVector {
	return NewQubit(1/math.Sqrt2, -1/math.Sqrt2)
}
