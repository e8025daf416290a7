package transform

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Test evaluates the predicate.
func (p Predicate[T]) Test(t T) bool {
	return p(t)
}

// And returns a predicate true only when both p and other hold.
// other is not evaluated when p is false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(t T) bool { return p(t) && other(t) }
}

// Or returns a predicate true when either p or other holds.
// other is not evaluated when p is true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(t T) bool { return p(t) || other(t) }
}

// Negate returns the logical inverse of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) bool { return !p(t) }
}

// Consumer performs a side effect on a value.
type Consumer[T any] func(T)

// Accept runs the consumer.
func (c Consumer[T]) Accept(t T) {
	c(t)
}

// AndThen returns a consumer that runs c and then next on the same value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(t T) {
		c(t)
		next(t)
	}
}
