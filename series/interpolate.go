// SPDX-License-Identifier: MIT
// Package: epinet/series
//
// interpolate.go — multi-series linear interpolation onto a shared grid.
//
// Contract:
//   - len(times) == len(values) > 0; each series has ≥ 2 points, no NaN and
//     no repeated time. Points may arrive in any order: each series is sorted
//     by time on a copy, inputs are never mutated.
//   - Grid = sorted times of the series with the smallest maximum time; the
//     first such series wins ties.
//   - Output row i is series i evaluated at every grid point.
//
// Complexity:
//   - O(S·G·log P): S series, G grid points, P points per series.

package series

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoSeries indicates an empty input collection.
	ErrNoSeries = errors.New("series: no series given")

	// ErrLengthMismatch indicates len(times) != len(values).
	ErrLengthMismatch = errors.New("series: times and values differ in length")

	// ErrInvalidSeries indicates a series that cannot be interpolated:
	// fewer than two points, NaN values, or a repeated time.
	ErrInvalidSeries = errors.New("series: invalid series")

	// ErrOutOfDomain indicates a grid point outside a series' time range.
	ErrOutOfDomain = errors.New("series: grid point outside series domain")
)

// Interpolate evaluates every (times[i], values[i]) series on the grid of
// the earliest-ending series and returns that grid with a len(times)×len(grid)
// matrix of interpolated values.
func Interpolate(times, values [][]float64) ([]float64, *mat.Dense, error) {
	if len(times) == 0 {
		return nil, nil, fmt.Errorf("Interpolate: %w", ErrNoSeries)
	}
	if len(times) != len(values) {
		return nil, nil, fmt.Errorf("Interpolate: %d times vs %d values: %w",
			len(times), len(values), ErrLengthMismatch)
	}

	// 1) Sort and fit every series; validation errors surface before any evaluation.
	sorted := make([][]float64, len(times))
	fits := make([]interp.PiecewiseLinear, len(times))
	ref := 0
	for i := range times {
		ts, ys, err := sortByTime(times[i], values[i])
		if err != nil {
			return nil, nil, fmt.Errorf("Interpolate: series %d: %w", i, err)
		}
		if err = fits[i].Fit(ts, ys); err != nil {
			return nil, nil, fmt.Errorf("Interpolate: series %d: %v: %w", i, err, ErrInvalidSeries)
		}
		sorted[i] = ts
		if last(ts) < last(sorted[ref]) {
			ref = i
		}
	}

	grid := make([]float64, len(sorted[ref]))
	copy(grid, sorted[ref])

	// 2) Evaluate on the grid, refusing to extrapolate.
	out := mat.NewDense(len(times), len(grid), nil)
	for i, ts := range sorted {
		lo, hi := ts[0], last(ts)
		for j, x := range grid {
			if x < lo || x > hi {
				return nil, nil, fmt.Errorf("Interpolate: series %d: t=%g not in [%g,%g]: %w",
					i, x, lo, hi, ErrOutOfDomain)
			}
			out.Set(i, j, fits[i].Predict(x))
		}
	}

	return grid, out, nil
}

// sortByTime validates one series and returns copies of ts and ys ordered
// by ascending time.
func sortByTime(ts, ys []float64) ([]float64, []float64, error) {
	if len(ts) != len(ys) {
		return nil, nil, fmt.Errorf("%d times vs %d values: %w", len(ts), len(ys), ErrInvalidSeries)
	}
	if len(ts) < 2 {
		return nil, nil, fmt.Errorf("%d points: %w", len(ts), ErrInvalidSeries)
	}
	if floats.HasNaN(ts) || floats.HasNaN(ys) {
		return nil, nil, fmt.Errorf("NaN present: %w", ErrInvalidSeries)
	}

	st := make([]float64, len(ts))
	copy(st, ts)
	inds := make([]int, len(ts))
	floats.Argsort(st, inds)

	sy := make([]float64, len(ys))
	for k, src := range inds {
		sy[k] = ys[src]
	}
	for k := 1; k < len(st); k++ {
		if st[k] == st[k-1] {
			return nil, nil, fmt.Errorf("time %g repeated: %w", st[k], ErrInvalidSeries)
		}
	}

	return st, sy, nil
}

func last(xs []float64) float64 { return xs[len(xs)-1] }
