package qsearch

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"math/rand/v2"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

/*
AmplitudeVector holds one real amplitude per basis state. The probability of
observing state i is the square of its amplitude. A vector is never modified
after construction; every gate returns a new one.

Normalization is the caller's concern. A vector whose probabilities do not
sum to 1 is still a valid value, it simply does not describe a physical state.
*/
type AmplitudeVector struct {
	amplitudes    []float64
	probabilities []float64
}

/*
NewAmplitudeVector stores a copy of the given amplitudes and derives their
probabilities.
*/
func NewAmplitudeVector(amplitudes ...float64) *AmplitudeVector {
	v := &AmplitudeVector{
		amplitudes:    make([]float64, len(amplitudes)),
		probabilities: make([]float64, len(amplitudes)),
	}

	copy(v.amplitudes, amplitudes)

	for i, a := range v.amplitudes {
		v.probabilities[i] = a * a
	}

	return v
}

/*
BasisState returns |index⟩ over size states: amplitude 1 at index, 0 elsewhere.
*/
func BasisState(size, index int) (*AmplitudeVector, error) {
	if size < 1 {
		return nil, fmt.Errorf("basis state of size %d: %w", size, ErrEmptyVector)
	}

	if index < 0 || index >= size {
		return nil, fmt.Errorf("basis state %d of %d: %w", index, size, ErrIndexOutOfRange)
	}

	amplitudes := make([]float64, size)
	amplitudes[index] = 1

	return NewAmplitudeVector(amplitudes...), nil
}

// Size is the number of basis states.
func (v *AmplitudeVector) Size() int {
	return len(v.amplitudes)
}

func (v *AmplitudeVector) Amplitude(i int) float64 {
	return v.amplitudes[i]
}

func (v *AmplitudeVector) Probability(i int) float64 {
	return v.probabilities[i]
}

// Amplitudes returns a copy of the amplitudes in index order.
func (v *AmplitudeVector) Amplitudes() []float64 {
	out := make([]float64, len(v.amplitudes))
	copy(out, v.amplitudes)
	return out
}

// Probabilities returns a copy of the probabilities in index order.
func (v *AmplitudeVector) Probabilities() []float64 {
	out := make([]float64, len(v.probabilities))
	copy(out, v.probabilities)
	return out
}

func (v *AmplitudeVector) TotalProbability() float64 {
	var total float64
	for _, p := range v.probabilities {
		total += p
	}
	return total
}

/*
IsNormalized reports whether the probabilities sum to 1 within tolerance.
*/
func (v *AmplitudeVector) IsNormalized(tolerance float64) bool {
	return math.Abs(v.TotalProbability()-1) <= tolerance
}

/*
Sample draws one basis state index, weighting each index by its probability.
The weights are normalized by their total, so a vector that is not
normalized still samples in proportion to its squared amplitudes. A nil rng
falls back to the package-level generator.

Sampling fails when the vector is empty, when an amplitude is NaN or
infinite, or when every probability is zero.
*/
func (v *AmplitudeVector) Sample(rng *rand.Rand) (int, error) {
	total, err := v.samplingWeight()
	if err != nil {
		return 0, err
	}

	var r float64
	if rng != nil {
		r = rng.Float64() * total
	} else {
		r = rand.Float64() * total
	}

	var cumulative float64
	last := 0

	for i, p := range v.probabilities {
		if p == 0 {
			continue
		}

		cumulative += p
		last = i

		if r < cumulative {
			return i, nil
		}
	}

	// Rounding can leave r at the very top of the range.
	return last, nil
}

func (v *AmplitudeVector) samplingWeight() (float64, error) {
	if len(v.amplitudes) == 0 {
		return 0, ErrEmptyVector
	}

	for i, a := range v.amplitudes {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return 0, fmt.Errorf("state %d: %w", i, ErrInvalidAmplitude)
		}
	}

	total := v.TotalProbability()
	if total == 0 || math.IsInf(total, 0) {
		return 0, ErrZeroProbability
	}

	return total, nil
}

/*
Histogram counts how often each basis state was observed.
*/
type Histogram []int

/*
Measure samples the vector shots times and counts the outcomes.
*/
func (v *AmplitudeVector) Measure(rng *rand.Rand, shots int) (Histogram, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%d shots: %w", shots, ErrInvalidShots)
	}

	histogram := make(Histogram, v.Size())

	for range shots {
		i, err := v.Sample(rng)
		if err != nil {
			return nil, err
		}
		histogram[i]++
	}

	return histogram, nil
}

// Shots is the total number of observations.
func (h Histogram) Shots() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Mode is the most frequently observed state, lowest index on ties.
func (h Histogram) Mode() int {
	best := 0
	for i, c := range h {
		if c > h[best] {
			best = i
		}
	}
	return best
}

func (h Histogram) Frequency(i int) float64 {
	shots := h.Shots()
	if shots == 0 {
		return 0
	}
	return float64(h[i]) / float64(shots)
}

/*
Table renders the vector as rows of basis state, amplitude and probability,
in index order.
*/
func (v *AmplitudeVector) Table() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("#", "state", "amplitude", "probability")

	for i, a := range v.amplitudes {
		t.Row(
			strconv.Itoa(i),
			Ket(i, v.Size()),
			strconv.FormatFloat(a, 'f', 4, 64),
			strconv.FormatFloat(v.probabilities[i], 'f', 4, 64),
		)
	}

	return t.String()
}

// Print writes Table to w.
func (v *AmplitudeVector) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.Table())
	return err
}

func (v *AmplitudeVector) String() string {
	return fmt.Sprintf("%v", v.amplitudes)
}

/*
Ket formats index as a binary basis label, |01⟩ for index 1 of 4 states.
*/
func Ket(index, size int) string {
	width := bits.Len(uint(max(size-1, 1)))
	return fmt.Sprintf("|%0*b⟩", width, index)
}

var tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
