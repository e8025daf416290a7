package transform

import "fmt"

// TryFunc is the fallible counterpart of [Func].
type TryFunc[T, R any] func(T) (R, error)

// Execute runs the function.
func (f TryFunc[T, R]) Execute(input T) (R, error) {
	return f(input)
}

// Lift turns an infallible transform into a TryFunc that never errors.
func Lift[T, R any](t Transform[T, R]) TryFunc[T, R] {
	return func(in T) (R, error) {
		return t.Execute(in), nil
	}
}

// ThenTry runs f and, if it succeeds, feeds its result to g. The first error
// stops the chain and is returned unchanged.
func ThenTry[A, B, C any](f TryFunc[A, B], g TryFunc[B, C]) TryFunc[A, C] {
	return func(a A) (C, error) {
		b, err := f(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(b)
	}
}

// Must converts f into a Func that panics on error. Intended for inputs the
// caller already knows to be valid, such as fixed demo data.
func Must[T, R any](f TryFunc[T, R]) Func[T, R] {
	return func(in T) R {
		out, err := f(in)
		if err != nil {
			panic(fmt.Sprintf("transform: %v", err))
		}
		return out
	}
}
