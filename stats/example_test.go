// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/epinet/stats"
)

func ExampleMeanCI() {
	iv, err := stats.MeanCI([]float64{1, 2, 3, 4, 5}, stats.DefaultConfidence)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f [%.3f, %.3f]\n", iv.Mean, iv.Lower, iv.Upper)
	// Output:
	// 3.000 [1.037, 4.963]
}
