// Package cmd provides the CLI commands for grover.
package cmd

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the grover CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grover",
		Short: "Simulate amplitude vectors and Grover search",
		Long: `grover runs a small real-valued simulation of qubit amplitude vectors.

It can apply the Walsh-Hadamard transform to a vector you supply, or run
Grover's search over a power-of-two number of states and measure the result.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newHadamardCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// newRand seeds a generator from seed, or from the clock when seed is 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
