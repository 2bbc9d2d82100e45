package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/theapemachine/qsearch"
)

var resultStyle = lipgloss.NewStyle().Bold(true)

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	var (
		size       int
		answer     int
		seed       uint64
		shots      int
		schedule   string
		iterations int
		dump       bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run Grover search and measure the result",
		Long: `Run Grover search over --size states with the answer at --answer.

The final amplitude vector is printed as a table, then measured --shots
times. Use --seed for reproducible measurements.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 1 {
				return fmt.Errorf("--size %d: %w", size, qsearch.ErrNotPowerOfTwo)
			}

			parsed, err := qsearch.ParseSchedule(schedule)
			if err != nil {
				return err
			}

			opts := []qsearch.SearchOption{qsearch.WithSchedule(parsed)}
			if iterations >= 0 {
				opts = append(opts, qsearch.WithIterations(iterations))
			}
			if dump {
				opts = append(opts, qsearch.WithTrace())
			}

			gs := qsearch.NewGroverSearch(make([]struct{}, size), answer, opts...)

			final, err := gs.Search()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if dump {
				spew.Fdump(out, gs.Trace())
			}

			if _, err := fmt.Fprintf(out, "%d states, %d iterations\n", gs.Size(), gs.Iterations()); err != nil {
				return err
			}

			if err := final.Print(out); err != nil {
				return err
			}

			histogram, err := final.Measure(newRand(seed), shots)
			if err != nil {
				return err
			}

			return printHistogram(out, histogram)
		},
	}

	cmd.Flags().IntVar(&size, "size", 4, "Number of states, a power of two")
	cmd.Flags().IntVar(&answer, "answer", 0, "Index of the marked state")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for measurement, 0 for a random seed")
	cmd.Flags().IntVar(&shots, "shots", 1, "Number of measurements")
	cmd.Flags().StringVar(&schedule, "schedule", qsearch.ScheduleCeilSqrt.String(), "Iteration schedule: ceil or optimal")
	cmd.Flags().IntVar(&iterations, "iterations", -1, "Fixed iteration count, overrides --schedule")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump every step of the search")

	return cmd
}

func printHistogram(w io.Writer, histogram qsearch.Histogram) error {
	size := len(histogram)

	if histogram.Shots() == 1 {
		i := histogram.Mode()
		_, err := fmt.Fprintln(w, resultStyle.Render(fmt.Sprintf("measured %s (%d)", qsearch.Ket(i, size), i)))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "state", "count", "frequency")

	for i, count := range histogram {
		t.Row(
			strconv.Itoa(i),
			qsearch.Ket(i, size),
			strconv.Itoa(count),
			strconv.FormatFloat(histogram.Frequency(i), 'f', 4, 64),
		)
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	mode := histogram.Mode()
	_, err := fmt.Fprintln(w, resultStyle.Render(fmt.Sprintf("most frequent %s (%d)", qsearch.Ket(mode, size), mode)))
	return err
}
