// Package series aligns several sampled time series onto one common grid.
//
// Points within a series may come in any order; each series is sorted by
// time on a private copy. Interpolate picks the series whose largest time
// is earliest as the grid and evaluates every series on it by piecewise-linear interpolation
// (gonum interp). Extrapolation is never performed: a grid point outside a
// series' own time range yields ErrOutOfDomain.
//
//	grid, m, err := series.Interpolate(
//		[][]float64{{0, 1, 2}, {0, 0.5, 1.5, 3}},
//		[][]float64{{0, 10, 20}, {5, 6, 7, 8}},
//	)
//	// grid = [0 1 2]; m is 2×3, row i holds series i on the grid.
package series
