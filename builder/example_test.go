// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/epinet/builder"
)

// ExampleFromEdgeList folds two reversed one-day contacts into one edge.
func ExampleFromEdgeList() {
	g, err := builder.FromEdgeList([]builder.Contact{
		{A: 1, B: 2, Seconds: 86400},
		{A: 2, B: 1, Seconds: 86400},
		{A: 2, B: 3, Seconds: 43200},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d %.1f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 1-2 2.0
	// 2-3 0.5
}

// ExampleBuildGraph composes a star fixture with a custom ID offset.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDOffset(10)},
		builder.Star(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount())
	// Output:
	// [10 11 12 13] 3
}
