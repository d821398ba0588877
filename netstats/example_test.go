// SPDX-License-Identifier: MIT

package netstats_test

import (
	"os"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/netstats"
)

func ExamplePrint() {
	g, _ := builder.FromEdgeList([]builder.Contact{
		{A: 1, B: 2, Seconds: 600},
		{A: 2, B: 3, Seconds: 1200},
		{A: 4, B: 5, Seconds: 300},
	})
	_ = netstats.Print(os.Stdout, g)
	// Output:
	// number of edges 3
	// number of nodes 5
	// number of edges/nodes 0.60
	// density 3.00e-01
	// fraction of nodes in largest component: 0.600
}
