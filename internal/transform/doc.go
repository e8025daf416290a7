// Package transform provides a generic single-operation abstraction over
// "take a T, produce an R" together with the helpers built on top of it.
//
// The capability itself is the [Transform] interface. Any function value can
// satisfy it through the [Func] adapter, which also carries the derived
// convenience operation [Func.PrintResult]:
//
//	strLen := transform.Func[string, int](func(s string) int { return len(s) })
//	strLen.PrintResult("Hello Java") // Default Method Output: 10
//
// Composition is provided as free functions because Go methods cannot
// introduce new type parameters:
//
//	x2 := transform.Func[int, int](func(x int) int { return x * 2 })
//	add10 := transform.Func[int, int](func(x int) int { return x + 10 })
//
//	transform.Then(x2, add10).Execute(2)  // add10(x2(2)) = 14
//	transform.After(x2, add10).Execute(2) // x2(add10(2)) = 24
//
// [Predicate] and [Consumer] cover the boolean-test and side-effect shapes
// used by collection pipelines. [TryFunc] is the fallible variant for callers
// that want to surface domain errors instead of panicking.
package transform
