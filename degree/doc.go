// Package degree answers degree-centric questions about a contact graph:
// the degree sequence, heterogeneity moments, degree-based vertex selection
// and the degree histogram.
//
// All functions accept core.View, so any graph store that can report
// vertices and degrees works. Results are deterministic (sorted by vertex
// ID or degree value) except Approximate, which draws from an RNG supplied
// through WithRand or WithSeed.
//
// Heterogeneity:
//
//	E(k)   = mean degree
//	E(k^2) = Var(k) + E(k)^2        (population variance)
//	kappa  = E(k^2) / E(k)
//
// kappa/E(k) equals 1 for a regular graph and grows with degree spread.
//
// Approximate selection:
//
// Approximate(g, k) returns a uniformly random vertex of degree k. When no
// vertex has degree k it walks the present degrees below k in descending
// order and draws from the first non-empty one. When every vertex has
// degree above k (or the graph is empty) it returns ErrNoCandidate.
package degree
