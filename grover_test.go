package qsearch

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGroverSearch(t *testing.T) {
	Convey("Given a search over four items with the answer at index 2", t, func() {
		gs := NewGroverSearch([]int{0, 1, 2, 3}, 2, WithTrace())

		So(gs.Size(), ShouldEqual, 4)
		So(gs.Iterations(), ShouldEqual, 1)

		Convey("When the search runs", func() {
			final, err := gs.Search()
			So(err, ShouldBeNil)

			Convey("It should pass through the expected states", func() {
				trace := gs.Trace()
				So(len(trace), ShouldEqual, 5)

				phases := make([]Phase, len(trace))
				for i, step := range trace {
					phases[i] = step.Phase
				}
				So(phases, ShouldResemble, []Phase{PhaseInit, PhaseSuperpose, PhaseReflect, PhaseInvert, PhaseDone})

				So(trace[0].Vector.Amplitudes(), ShouldResemble, []float64{1, 0, 0, 0})
				So(trace[1].Vector.Amplitudes(), ShouldResemble, []float64{0.5, 0.5, 0.5, 0.5})
				So(trace[2].Vector.Amplitudes(), ShouldResemble, []float64{0.5, 0.5, -0.5, 0.5})
				So(trace[3].Vector.Amplitudes(), ShouldResemble, []float64{0, 0, 1, 0})
				So(trace[2].Iteration, ShouldEqual, 1)

				So(spew.Sdump(trace), ShouldContainSubstring, "qsearch.Step")
			})

			Convey("It should end on the answer", func() {
				So(final.Amplitudes(), ShouldResemble, []float64{0, 0, 1, 0})
			})

			Convey("Sampling should always return the answer", func() {
				rng := newTestRand(3)
				for range 500 {
					i, err := final.Sample(rng)
					So(err, ShouldBeNil)
					So(i, ShouldEqual, 2)
				}
			})
		})

		Convey("When it runs and measures in one go", func() {
			index, final, err := gs.Run(newTestRand(5))
			So(err, ShouldBeNil)
			So(index, ShouldEqual, 2)
			So(final.Probability(2), ShouldEqual, 1.0)
		})
	})

	Convey("Given a search over two items", t, func() {
		gs := NewGroverSearch([]string{"a", "b"}, 1, WithIterations(0), WithTrace())

		Convey("The superposition should be uniform", func() {
			final, err := gs.Search()
			So(err, ShouldBeNil)
			So(final.Amplitude(0), ShouldAlmostEqual, 1/math.Sqrt2, tolerance)
			So(final.Amplitude(1), ShouldAlmostEqual, 1/math.Sqrt2, tolerance)
			So(final.Probabilities(), ShouldResemble, gs.Trace()[1].Vector.Probabilities())
		})

		Convey("The default schedule should keep the probabilities even", func() {
			final, err := NewGroverSearch([]string{"a", "b"}, 1).Search()
			So(err, ShouldBeNil)
			So(final.Probability(0), ShouldAlmostEqual, 0.5, tolerance)
			So(final.Probability(1), ShouldAlmostEqual, 0.5, tolerance)
		})
	})

	Convey("Given a search over sixteen items", t, func() {
		items := make([]int, 16)
		gs := NewGroverSearch(items, 5)

		Convey("The answer should dominate after three iterations", func() {
			So(gs.Iterations(), ShouldEqual, 3)

			final, err := gs.Search()
			So(err, ShouldBeNil)
			So(final.Probability(5), ShouldBeGreaterThan, 0.9)
			So(final.TotalProbability(), ShouldAlmostEqual, 1, 1e-9)

			histogram, err := final.Measure(newTestRand(13), 1000)
			So(err, ShouldBeNil)
			So(histogram.Mode(), ShouldEqual, 5)
		})
	})

	Convey("Given an oracle with two marked states out of eight", t, func() {
		gs := NewGroverSearchWithOracle(8, SetOracle(1, 6), WithIterations(1))

		Convey("Probability should split between the marked states", func() {
			final, err := gs.Search()
			So(err, ShouldBeNil)
			for i := range 8 {
				if i == 1 || i == 6 {
					So(final.Probability(i), ShouldAlmostEqual, 0.5, 1e-9)
				} else {
					So(final.Probability(i), ShouldAlmostEqual, 0, 1e-9)
				}
			}
		})
	})

	Convey("Given invalid searches", t, func() {
		Convey("A size that is not a power of two should be rejected", func() {
			_, err := NewGroverSearch([]int{0, 1, 2}, 1).Search()
			So(errors.Is(err, ErrNotPowerOfTwo), ShouldBeTrue)

			_, err = NewGroverSearch([]int{}, 0).Search()
			So(errors.Is(err, ErrNotPowerOfTwo), ShouldBeTrue)
		})

		Convey("An answer outside the items should be rejected", func() {
			_, err := NewGroverSearch([]int{0, 1, 2, 3}, 4).Search()
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)

			_, err = NewGroverSearch([]int{0, 1, 2, 3}, -1).Search()
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("A nil oracle should be rejected", func() {
			_, _, err := NewGroverSearchWithOracle(4, nil).Run(nil)
			So(errors.Is(err, ErrNilOracle), ShouldBeTrue)
		})

		Convey("A search without tracing should leave no trace", func() {
			gs := NewGroverSearch([]int{0, 1, 2, 3}, 0)
			_, err := gs.Search()
			So(err, ShouldBeNil)
			So(gs.Trace(), ShouldBeEmpty)
		})
	})
}

func TestPhase(t *testing.T) {
	Convey("Given the search phases", t, func() {
		So(PhaseInit.String(), ShouldEqual, "init")
		So(PhaseDone.String(), ShouldEqual, "done")
		So(Phase(9).String(), ShouldEqual, "Phase(9)")
	})
}
