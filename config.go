package qsearch

import (
	"fmt"
	"math"
)

// IterationSchedule derives the number of Grover iterations from N.
type IterationSchedule int

const (
	// ScheduleCeilSqrt runs ⌈√N⌉ − 1 iterations.
	ScheduleCeilSqrt IterationSchedule = iota
	// ScheduleOptimal runs ⌊π/4 · √N⌋ iterations.
	ScheduleOptimal
)

func (s IterationSchedule) Iterations(n int) int {
	if n < 1 {
		return 0
	}

	root := math.Sqrt(float64(n))

	switch s {
	case ScheduleOptimal:
		return int(math.Floor(math.Pi / 4 * root))
	default:
		return int(math.Ceil(root)) - 1
	}
}

func (s IterationSchedule) String() string {
	switch s {
	case ScheduleCeilSqrt:
		return "ceil"
	case ScheduleOptimal:
		return "optimal"
	default:
		return fmt.Sprintf("IterationSchedule(%d)", int(s))
	}
}

// ParseSchedule accepts the names produced by IterationSchedule.String.
func ParseSchedule(name string) (IterationSchedule, error) {
	switch name {
	case "ceil", "":
		return ScheduleCeilSqrt, nil
	case "optimal":
		return ScheduleOptimal, nil
	default:
		return 0, fmt.Errorf("unknown iteration schedule %q", name)
	}
}

type Config struct {
	Schedule IterationSchedule
	// Iterations overrides Schedule when it is zero or more.
	Iterations int
	Trace      bool
}

func NewConfig() *Config {
	return &Config{
		Schedule:   ScheduleCeilSqrt,
		Iterations: -1,
	}
}

// SearchOption is a function type for configuring a search
type SearchOption func(*Config)

func WithSchedule(schedule IterationSchedule) SearchOption {
	return func(c *Config) {
		c.Schedule = schedule
	}
}

// WithIterations fixes the iteration count regardless of N.
func WithIterations(k int) SearchOption {
	return func(c *Config) {
		c.Iterations = k
	}
}

// WithTrace records a snapshot of the vector after every step.
func WithTrace() SearchOption {
	return func(c *Config) {
		c.Trace = true
	}
}
