package transform

import (
	"fmt"
	"io"
	"os"
)

// resultLabel prefixes every line written by PrintResult.
const resultLabel = "Default Method Output: "

// Transform maps a value of type T to a value of type R.
//
// Implementations are expected to be pure and total over T. Failure modes
// are not part of the contract; use [TryFunc] when an operation can fail.
type Transform[T, R any] interface {
	Execute(input T) R
}

// Compile-time interface check.
var _ Transform[int, int] = Func[int, int](nil)

// Func adapts an ordinary function to [Transform].
type Func[T, R any] func(T) R

// Execute implements [Transform].
func (f Func[T, R]) Execute(input T) R {
	return f(input)
}

// PrintResult executes f and writes one labeled line with the result to
// standard output. The computed value is not returned.
func (f Func[T, R]) PrintResult(input T) {
	PrintResult[T, R](f, input)
}

// Identity returns a transform whose Execute returns its argument unchanged.
func Identity[T any]() Func[T, T] {
	return func(t T) T { return t }
}

// Of wraps any Transform as a Func so the Func helpers can be used on it.
// A Func argument is returned as-is.
func Of[T, R any](t Transform[T, R]) Func[T, R] {
	if f, ok := t.(Func[T, R]); ok {
		return f
	}
	return t.Execute
}

// PrintResult is the derived operation available to every Transform:
// it computes t.Execute(input) and writes "Default Method Output: <result>"
// to standard output.
func PrintResult[T, R any](t Transform[T, R], input T) {
	// Standard output is the only sink; a failed write has nowhere to go.
	_ = FprintResult(os.Stdout, t, input)
}

// FprintResult is PrintResult with an explicit destination.
func FprintResult[T, R any](w io.Writer, t Transform[T, R], input T) error {
	if _, err := fmt.Fprintf(w, "%s%v\n", resultLabel, t.Execute(input)); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
