package app

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-transform-demo/internal/transform"
)

// Transforms shown by the walkthrough and exercised by the self-checks.
var (
	// StringLength counts characters, not bytes.
	StringLength = transform.Func[string, int](utf8.RuneCountInString)

	// Round rounds to the nearest integer with halves rounding up. NaN rounds
	// to 0 and values outside the int64 range saturate.
	Round = transform.Func[float64, int64](roundHalfUp)

	ToUpper = transform.Func[string, string](strings.ToUpper)

	MultiplyBy2 = transform.Func[int, int](func(x int) int { return x * 2 })
	Add10       = transform.Func[int, int](func(x int) int { return x + 10 })
	Plus3       = transform.Func[int, int](func(x int) int { return x + 3 })

	IsEven = transform.Predicate[int](func(n int) bool { return n%2 == 0 })
)

func roundHalfUp(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	// x+0.5 rounds up to 1 for the largest double below 0.5.
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int64(f)
}

// doubledEven is the per-element term of the benchmark sum: 2n for even n,
// 0 otherwise.
func doubledEven(n int) int64 {
	if IsEven.Test(n) {
		return int64(MultiplyBy2.Execute(n))
	}
	return 0
}

// widen converts an int to int64 for summing.
var widen = transform.Func[int, int64](func(n int) int64 { return int64(n) })
