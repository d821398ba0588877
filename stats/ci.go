// SPDX-License-Identifier: MIT
// Package: epinet/stats
//
// ci.go — mean confidence interval with Student-t bounds.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewSamples); 0 < confidence < 1 (else ErrConfidence).
//   - Lower ≥ 0 always; Lower == Upper == Mean for zero-variance input
//     with a non-negative mean.
//
// Complexity:
//   - MeanCI: O(n). MeanCIColumns: O(rows·cols).

package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the conventional 95% level.
const DefaultConfidence = 0.95

var (
	// ErrTooFewSamples indicates fewer than two samples; the t distribution
	// needs at least one degree of freedom.
	ErrTooFewSamples = errors.New("stats: need at least two samples")

	// ErrConfidence indicates a confidence level outside (0,1).
	ErrConfidence = errors.New("stats: confidence must be in (0,1)")

	// ErrNilMatrix indicates a nil sample matrix.
	ErrNilMatrix = errors.New("stats: matrix is nil")
)

// Interval is a point estimate with its confidence bounds.
type Interval struct {
	Mean  float64 `yaml:"mean"`
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// MeanCI returns the mean of data and its confidence interval at level
// confidence, with the lower bound clamped to be non-negative.
func MeanCI(data []float64, confidence float64) (Interval, error) {
	if !(confidence > 0 && confidence < 1) {
		return Interval{}, fmt.Errorf("MeanCI(confidence=%g): %w", confidence, ErrConfidence)
	}
	n := len(data)
	if n <= 1 {
		return Interval{}, fmt.Errorf("MeanCI(n=%d): %w", n, ErrTooFewSamples)
	}

	mean, std := stat.MeanStdDev(data, nil)
	sem := stat.StdErr(std, float64(n))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	h := sem * t.Quantile((1+confidence)/2)

	return Interval{
		Mean:  mean,
		Lower: math.Max(mean-h, 0),
		Upper: mean + h,
	}, nil
}

// MeanCIColumns treats each row of x as a sample and returns one Interval
// per column.
func MeanCIColumns(x mat.Matrix, confidence float64) ([]Interval, error) {
	if x == nil {
		return nil, fmt.Errorf("MeanCIColumns: %w", ErrNilMatrix)
	}
	_, c := x.Dims()

	out := make([]Interval, c)
	var (
		col []float64
		err error
	)
	for j := 0; j < c; j++ {
		col = mat.Col(col, j, x)
		if out[j], err = MeanCI(col, confidence); err != nil {
			return nil, fmt.Errorf("MeanCIColumns: column %d: %w", j, err)
		}
	}

	return out, nil
}
