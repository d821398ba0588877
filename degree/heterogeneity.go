// SPDX-License-Identifier: MIT
// Package: epinet/degree
//
// heterogeneity.go — first and second degree moments and kappa.

package degree

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/epinet/core"
)

// Map keys returned by Moments.Map.
const (
	KeyMeanDegree   = "E(k)"
	KeySecondMoment = "E(k^2)"
	KeyKappa        = "kappa"
	KeyKappaRatio   = "kappa/E(k)"
)

// Moments holds the degree heterogeneity metrics of a graph.
type Moments struct {
	MeanDegree   float64 `yaml:"mean_degree"`
	SecondMoment float64 `yaml:"second_moment"`
	Kappa        float64 `yaml:"kappa"`
	KappaRatio   float64 `yaml:"kappa_ratio"`
}

// Map returns the metrics keyed by their conventional names.
func (m Moments) Map() map[string]float64 {
	return map[string]float64{
		KeyMeanDegree:   m.MeanDegree,
		KeySecondMoment: m.SecondMoment,
		KeyKappa:        m.Kappa,
		KeyKappaRatio:   m.KappaRatio,
	}
}

// Heterogeneity computes E(k), E(k²) = Var(k)+E(k)², kappa = E(k²)/E(k)
// and kappa/E(k) over all vertices of g. Var is the population variance.
//
// Returns ErrEmptyGraph for a graph without vertices and ErrZeroMeanDegree
// when no vertex has an edge.
// Complexity: O(V).
func Heterogeneity(g core.View) (Moments, error) {
	seq, err := Sequence(g)
	if err != nil {
		return Moments{}, fmt.Errorf("Heterogeneity: %w", err)
	}
	if len(seq) == 0 {
		return Moments{}, fmt.Errorf("Heterogeneity: %w", ErrEmptyGraph)
	}

	ks := make([]float64, len(seq))
	for i, e := range seq {
		ks[i] = float64(e.Degree)
	}

	mean := stat.Mean(ks, nil)
	if mean == 0 {
		return Moments{}, fmt.Errorf("Heterogeneity: %w", ErrZeroMeanDegree)
	}
	second := stat.PopVariance(ks, nil) + mean*mean
	kappa := second / mean

	return Moments{
		MeanDegree:   mean,
		SecondMoment: second,
		Kappa:        kappa,
		KappaRatio:   kappa / mean,
	}, nil
}
