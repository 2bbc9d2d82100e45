package qsearch

import (
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

// Phase is a step of a Grover search.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseSuperpose
	PhaseReflect
	PhaseInvert
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseSuperpose:
		return "superpose"
	case PhaseReflect:
		return "reflect"
	case PhaseInvert:
		return "invert"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

/*
Step is one entry of a search trace: the phase just completed, the iteration
it belongs to (0 outside the reflect/invert loop) and the resulting vector.
*/
type Step struct {
	Phase     Phase
	Iteration int
	Vector    *AmplitudeVector
}

/*
GroverSearch amplifies the amplitude of the states an oracle marks.

A search runs a fixed sequence: start from |0⟩, apply the Hadamard transform
to reach a uniform superposition, then apply Reflect followed by
InvertAboutMean a number of times derived from N. The resulting vector is
returned to the caller for measurement.

All arithmetic is on real amplitudes. That is enough for sign-flip oracles
such as EqualityOracle, but not for oracles that need relative complex phases.
*/
type GroverSearch struct {
	size      int
	answer    int
	hasAnswer bool
	oracle    Oracle
	config    *Config
	trace     []Step
}

/*
NewGroverSearch prepares a search over items where the element at
answerIndex is the one the oracle marks. Only len(items) is used.
*/
func NewGroverSearch[T any](items []T, answerIndex int, opts ...SearchOption) *GroverSearch {
	gs := newGroverSearch(len(items), EqualityOracle(answerIndex), opts...)
	gs.answer = answerIndex
	gs.hasAnswer = true

	errnie.Info(
		"NewGroverSearch - size %d, answer %d, iterations %d",
		gs.size,
		answerIndex,
		gs.Iterations(),
	)

	return gs
}

/*
NewGroverSearchWithOracle prepares a search over size states using an
arbitrary oracle.
*/
func NewGroverSearchWithOracle(size int, oracle Oracle, opts ...SearchOption) *GroverSearch {
	gs := newGroverSearch(size, oracle, opts...)

	errnie.Info(
		"NewGroverSearchWithOracle - size %d, iterations %d",
		gs.size,
		gs.Iterations(),
	)

	return gs
}

func newGroverSearch(size int, oracle Oracle, opts ...SearchOption) *GroverSearch {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}

	return &GroverSearch{
		size:   size,
		oracle: oracle,
		config: config,
	}
}

func (gs *GroverSearch) Size() int {
	return gs.size
}

// Iterations is the number of reflect/invert pairs Search applies.
func (gs *GroverSearch) Iterations() int {
	if gs.config.Iterations >= 0 {
		return gs.config.Iterations
	}
	return gs.config.Schedule.Iterations(gs.size)
}

/*
Search runs the algorithm and returns the final amplitude vector. N must be a
positive power of two.
*/
func (gs *GroverSearch) Search() (*AmplitudeVector, error) {
	gs.trace = nil

	if err := gs.validate(); err != nil {
		return nil, err
	}

	state, err := BasisState(gs.size, 0)
	if err != nil {
		return nil, err
	}
	gs.record(PhaseInit, 0, state)

	if state, err = Hadamard(state); err != nil {
		return nil, err
	}
	gs.record(PhaseSuperpose, 0, state)

	iterations := gs.Iterations()

	for k := 1; k <= iterations; k++ {
		if state, err = Reflect(state, gs.oracle); err != nil {
			return nil, err
		}
		gs.record(PhaseReflect, k, state)

		if state, err = InvertAboutMean(state); err != nil {
			return nil, err
		}
		gs.record(PhaseInvert, k, state)
	}

	gs.record(PhaseDone, iterations, state)

	errnie.Info("GroverSearch - done after %d iterations, amplitudes %v", iterations, state)

	return state, nil
}

/*
Run searches and then samples the final vector once.
*/
func (gs *GroverSearch) Run(rng *rand.Rand) (int, *AmplitudeVector, error) {
	state, err := gs.Search()
	if err != nil {
		return 0, nil, err
	}

	index, err := state.Sample(rng)
	if err != nil {
		return 0, state, err
	}

	return index, state, nil
}

// Trace returns the steps of the last Search, empty unless WithTrace was set.
func (gs *GroverSearch) Trace() []Step {
	out := make([]Step, len(gs.trace))
	copy(out, gs.trace)
	return out
}

func (gs *GroverSearch) validate() error {
	if !isPowerOfTwo(gs.size) {
		return fmt.Errorf("grover search over %d states: %w", gs.size, ErrNotPowerOfTwo)
	}

	if gs.oracle == nil {
		return ErrNilOracle
	}

	if gs.hasAnswer && (gs.answer < 0 || gs.answer >= gs.size) {
		return fmt.Errorf("answer %d of %d: %w", gs.answer, gs.size, ErrIndexOutOfRange)
	}

	return nil
}

func (gs *GroverSearch) record(phase Phase, iteration int, state *AmplitudeVector) {
	if !gs.config.Trace {
		return
	}

	gs.trace = append(gs.trace, Step{
		Phase:     phase,
		Iteration: iteration,
		Vector:    state,
	})
}
