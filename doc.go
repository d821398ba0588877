// Package epinet is a toolkit for epidemiological contact-network studies:
// turning raw contact logs into weighted graphs, summarizing them, and
// computing the degree and sampling statistics that feed epidemic models.
//
// What is in the box?
//
//	core/         — thread-safe undirected weighted Graph, int64 vertex IDs,
//	                canonical pairs and the read-only View interface
//	builder/      — contact edge lists → graphs (seconds → days, summed per
//	                pair) plus deterministic topology fixtures
//	bfs/          — breadth-first traversal with depth limit and cancellation
//	neighborhood/ — k-hop induced subgraph around a root
//	degree/       — degree sequence, heterogeneity (E(k), E(k²), kappa),
//	                exact/range/approximate selection, degree histogram
//	netstats/     — counts, density, largest-component fraction
//	converters/   — core.Graph ⇄ gonum graph/simple
//	stats/        — mean with Student-t confidence interval
//	series/       — linear interpolation of many series onto one grid
//	tabular/      — CSV readers for contacts, sample matrices and series
//	cmd/epinet    — command-line front end
//
// Quick example:
//
//	g, _ := builder.FromEdgeList([]builder.Contact{
//		{A: 1, B: 2, Seconds: 86400},
//		{A: 2, B: 1, Seconds: 86400}, // same pair, weights add up
//		{A: 2, B: 3, Seconds: 43200},
//	})
//	_ = netstats.Print(os.Stdout, g)
//	m, _ := degree.Heterogeneity(g)
//	fmt.Println(m.Kappa)
//
// Numerical work (statistics, Student-t quantiles, interpolation, matrices,
// connected components) is delegated to gonum.
//
//	go install github.com/katalvlaran/epinet/cmd/epinet@latest
package epinet
