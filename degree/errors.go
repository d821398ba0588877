// SPDX-License-Identifier: MIT

package degree

import "errors"

var (
	// ErrEmptyGraph indicates a statistic that is undefined on zero vertices.
	ErrEmptyGraph = errors.New("degree: graph has no vertices")

	// ErrZeroMeanDegree indicates that every vertex is isolated, so kappa
	// would divide by zero.
	ErrZeroMeanDegree = errors.New("degree: mean degree is zero")

	// ErrNoCandidate indicates that no vertex has a degree ≤ the requested k.
	ErrNoCandidate = errors.New("degree: no vertex with degree at or below k")
)
