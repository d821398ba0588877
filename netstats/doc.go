// Package netstats reports summary statistics of a contact network:
// edge and node counts, edges per node, density and the fraction of nodes
// in the largest connected component.
//
// Summarize returns the figures as a Summary; Print writes them as the
// five-line human-readable report used by the epinet CLI:
//
//	number of edges 12
//	number of nodes 10
//	number of edges/nodes 1.20
//	density 2.67e-01
//	fraction of nodes in largest component: 0.800
//
// A graph with zero nodes has no defined density or component fraction;
// Summarize and Print return ErrEmptyGraph for it. Connected components
// are computed by gonum's topo package through the converters adapter.
package netstats
