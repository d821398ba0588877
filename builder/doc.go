// Package builder turns raw inputs into core.Graph values.
//
// The primary entry point is FromEdgeList, which folds contact records
// (two endpoint IDs plus a duration in seconds) into an undirected weighted
// graph. Durations are converted to days (÷ SecondsPerDay) and records that
// name the same unordered pair are summed into a single edge:
//
//	g, err := builder.FromEdgeList([]builder.Contact{
//		{A: 1, B: 2, Seconds: 86400},
//		{A: 2, B: 1, Seconds: 86400},
//	})
//	// g has one edge {1,2} with weight 2.0
//
// The package also carries a small set of deterministic topology fixtures
// (Path, Cycle, Star, Complete, RandomSparse) used by tests, examples and
// benchmarks across the module. All of them are Constructors and compose
// through BuildGraph:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(100, 0.05),
//	)
//
// Options:
//
//   - WithIDScheme / WithIDOffset / StrideIDFn: map fixture index → vertex ID.
//   - WithSeed / WithRand: RNG for stochastic constructors and weights.
//   - WithWeightFn / WithConstantWeight / WithUniformWeight /
//     WithExponentialWeight: per-edge fixture weights.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource: fixture
//     parameter validation.
//   - ErrInvalidWeight: a contact with a NaN or infinite duration.
//   - ErrConstructFailed: BuildGraph misuse (nil Constructor).
//
// Option constructors panic on meaningless arguments (nil functions,
// negative constants). Constructors never panic; they return wrapped
// sentinels that callers match with errors.Is.
package builder
