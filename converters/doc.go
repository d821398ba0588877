// Package converters provides two-way adapters between core.Graph and
// gonum's graph/simple representation.
//
// Use converters to hand an epinet contact graph to gonum algorithms
// (connected components, paths, centrality) and to bring gonum-built graphs
// back into core.Graph. Vertex IDs and edge weights are carried verbatim.
//
// gonum simple graphs cannot hold self-loops, so ToGonum skips loop edges;
// the loop vertex itself is still exported.
package converters
