package qsearch

/*
Oracle marks basis states. Evaluate must be a pure function of the index and
defined for every index in [0, N).
*/
type Oracle interface {
	Evaluate(index int) bool
}

/*
OracleFunc adapts a plain predicate to the Oracle interface.
*/
type OracleFunc func(index int) bool

func (f OracleFunc) Evaluate(index int) bool {
	return f(index)
}

/*
EqualityOracle marks exactly one index, the answer.
*/
func EqualityOracle(answer int) Oracle {
	return OracleFunc(func(index int) bool {
		return index == answer
	})
}

/*
SetOracle marks every index in the given set.
*/
func SetOracle(indices ...int) Oracle {
	marked := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		marked[i] = struct{}{}
	}

	return OracleFunc(func(index int) bool {
		_, ok := marked[index]
		return ok
	})
}

// Marked lists the indices in [0, size) that oracle marks.
func Marked(oracle Oracle, size int) []int {
	var out []int
	for i := 0; i < size; i++ {
		if oracle.Evaluate(i) {
			out = append(out, i)
		}
	}
	return out
}
