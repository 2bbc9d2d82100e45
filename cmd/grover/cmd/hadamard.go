package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theapemachine/qsearch"
)

// newHadamardCmd creates the hadamard command.
func newHadamardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hadamard AMPLITUDE...",
		Short: "Apply the Walsh-Hadamard transform to a vector",
		Long: `Apply the Walsh-Hadamard transform to the given amplitudes.

The number of amplitudes must be a power of two. Amplitudes are used as
given; they are not normalized. Put -- before a list that starts with a
negative amplitude.`,
		Example: "  grover hadamard 1 0 0 0\n  grover hadamard -- -0.5 0.5 0.5 0.5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amplitudes := make([]float64, len(args))
			for i, arg := range args {
				a, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("amplitude %d: %w", i, err)
				}
				amplitudes[i] = a
			}

			in := qsearch.NewAmplitudeVector(amplitudes...)

			out, err := qsearch.Hadamard(in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if _, err := fmt.Fprintln(w, "before"); err != nil {
				return err
			}
			if err := in.Print(w); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, "after"); err != nil {
				return err
			}
			return out.Print(w)
		},
	}

	return cmd
}
