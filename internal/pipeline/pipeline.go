// Package pipeline provides declarative, order-preserving collection stages
// over iter.Seq: filter, map, and the terminal reductions used by the demo.
//
// Stages are lazy. Nothing runs until a terminal operation (ForEach,
// Collect, Count, Sum, Reduce) ranges over the sequence:
//
//	names := pipeline.Collect(
//	    pipeline.Map(
//	        pipeline.Filter(pipeline.From(products), expensive),
//	        product.Name,
//	    ),
//	)
package pipeline

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/jsamuelsen11/go-transform-demo/internal/transform"
)

// Number is the set of types Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// From returns a sequence over the elements of items in index order.
func From[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

// Filter yields only the elements of seq for which keep reports true.
func Filter[T any](seq iter.Seq[T], keep transform.Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn applied to each element of seq.
func Map[T, R any](seq iter.Seq[T], fn transform.Transform[T, R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn.Execute(v)) {
				return
			}
		}
	}
}

// ForEach passes every element of seq to fn.
func ForEach[T any](seq iter.Seq[T], fn transform.Consumer[T]) {
	for v := range seq {
		fn(v)
	}
}

// Collect drains seq into a new slice. The result is never nil.
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Reduce folds seq from the left starting at init.
func Reduce[T, A any](seq iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds every element of seq.
func Sum[N Number](seq iter.Seq[N]) N {
	return Reduce(seq, N(0), func(acc, v N) N { return acc + v })
}
