// Package bellmanford implements the Bellman-Ford shortest-path algorithm
// over a dense cost matrix, with negative-cycle detection and path/route
// reconstruction.
//
// What
//
//   - New(matrix, size): wrap a caller-owned flat row-major size×size cost
//     matrix. The sentinel Inf marks "no edge"; negative finite weights
//     are legal.
//   - Run(source): initialize distances to Inf except the source (0),
//     relax every edge size−1 times, then perform one additional full
//     pass — if any edge can still be relaxed, a negative-weight cycle is
//     reachable and the run reports false; otherwise true, and the
//     distance/predecessor tables are valid for this source.
//   - Distance / Predecessor: per-vertex results after a successful run.
//   - PathTo(target): predecessor walk from target back to the source,
//     reversed; the source vertex itself is dropped by convention. An
//     unreachable target yields an empty path.
//   - RouteTo(target): the same path expressed as (from, to, cost) edge
//     triples, including the leg out of the source.
//   - String(): the distance and predecessor tables rendered as
//     "[d₀,…] [p₀,…]" with "inf" and "null" for the sentinels.
//
// Why
//
//	Unlike Dijkstra, Bellman-Ford tolerates negative edge weights and can
//	prove when "shortest path" is undefined: a closed path with negative
//	total weight would lower costs forever. Detection covers existence
//	only; identifying the vertices on the cycle is out of scope.
//
// Sentinels
//
//	Inf (math.MaxInt64) and None (-1) are reserved values distinguishable
//	from every legitimate finite cost and vertex index. Relaxation guards
//	against Inf before adding, so no overflow can occur.
//
// Errors
//
//   - ErrBadSize      if size is negative.
//   - ErrMatrixSize   if len(matrix) ≠ size×size.
//   - ErrSourceRange  if Run is given an out-of-range source.
//   - ErrVertexRange  if PathTo/RouteTo target an out-of-range vertex.
//   - ErrNotRun       if results are queried before a completed Run.
//   - ErrNegativeCycle if results are queried after Run returned false.
//
// Complexity (V = size, E = V²)
//
//   - Time:   O(V·E) = O(V³) for the dense matrix form.
//   - Memory: O(V) for the distance and predecessor tables.
package bellmanford
