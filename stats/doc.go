// Package stats estimates the mean of a sample with a Student-t confidence
// interval.
//
// For n samples with mean m and sample standard deviation s (n−1 in the
// denominator), the half-width at confidence c is
//
//	h = s/√n · t((1+c)/2; n−1)
//
// where t(p; ν) is the Student-t quantile with ν degrees of freedom. The
// interval is [max(m−h, 0), m+h]: the quantities this module estimates
// (contact counts, durations, epidemic sizes) are non-negative, so the
// lower bound is clamped at zero.
//
// MeanCIColumns applies MeanCI to every column of a gonum matrix whose rows
// are samples.
package stats
