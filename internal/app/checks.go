package app

import (
	"github.com/jsamuelsen11/go-transform-demo/internal/pipeline"
	"github.com/jsamuelsen11/go-transform-demo/internal/transform"
)

// Check is a named equality check evaluated by RunChecks.
type Check struct {
	Name string
	Run  func() bool
}

// DefaultChecks returns the five self-checks in evaluation order.
func DefaultChecks() []Check {
	return []Check{
		{
			Name: "upper-case transform",
			Run:  func() bool { return ToUpper.Execute("test") == "TEST" },
		},
		{
			Name: "identity",
			Run:  func() bool { return transform.Identity[int]().Execute(50) == 50 },
		},
		{
			Name: "x2 then plus3",
			Run:  func() bool { return transform.Then[int, int, int](MultiplyBy2, Plus3).Execute(2) == 7 },
		},
		{
			Name: "x2 after plus3",
			Run:  func() bool { return transform.After[int, int, int](MultiplyBy2, Plus3).Execute(2) == 10 },
		},
		{
			Name: "count evens",
			Run: func() bool {
				return pipeline.Count(pipeline.Filter(pipeline.From([]int{1, 2, 3, 4}), IsEven)) == 2
			},
		},
	}
}
