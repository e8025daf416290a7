package transform

// Then returns a transform computing g(f(x)): f runs first, its output
// feeds g.
func Then[A, B, C any](f Transform[A, B], g Transform[B, C]) Func[A, C] {
	return func(a A) C {
		return g.Execute(f.Execute(a))
	}
}

// After returns a transform computing f(g(x)): g runs first, its output
// feeds f. After(f, g) is Then(g, f).
func After[A, B, C any](f Transform[B, C], g Transform[A, B]) Func[A, C] {
	return Then(g, f)
}

// Chain composes same-typed transforms left to right, so
// Chain(f, g, h).Execute(x) == h(g(f(x))). An empty chain is Identity.
func Chain[T any](steps ...Transform[T, T]) Func[T, T] {
	if len(steps) == 0 {
		return Identity[T]()
	}
	// Copy so later mutation of the caller's slice cannot change behavior.
	fs := make([]Transform[T, T], len(steps))
	copy(fs, steps)

	return func(t T) T {
		for _, f := range fs {
			t = f.Execute(t)
		}
		return t
	}
}
