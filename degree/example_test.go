// SPDX-License-Identifier: MIT

package degree_test

import (
	"fmt"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/degree"
)

func ExampleHeterogeneity() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(5))
	m, err := degree.Heterogeneity(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("E(k)=%.2f E(k^2)=%.2f kappa=%.2f\n", m.MeanDegree, m.SecondMoment, m.Kappa)
	// Output:
	// E(k)=1.60 E(k^2)=4.00 kappa=2.50
}

func ExampleDistribution() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(4))
	values, counts, _ := degree.Distribution(g)
	fmt.Println(values, counts)
	// Output:
	// [1 2] [2 2]
}
