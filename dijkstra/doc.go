// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// grid adjacency provider, returning the move sequence from start to goal
// as compass direction labels.
//
// What
//
//   - Run(adj, start, goal, opts...): classic uniform-cost search with a
//     min-heap priority queue keyed by accumulated cost and a
//     best-known-cost map keyed by position. On dequeue of the goal the
//     search stops and the path is reconstructed by walking predecessor
//     links backward.
//   - Result: an ordered []grid.Direction from start to goal; empty when
//     start equals goal or the goal is unreachable (infeasibility is a
//     result, not an error).
//
// Why
//
//	Grid movement with non-negative step costs is the textbook habitat of
//	uniform-cost search: the first time the goal leaves the frontier its
//	accumulated cost is provably minimal.
//
// Implementation notes
//
//   - Lazy decrease-key: improving a position's cost pushes a fresh heap
//     entry rather than re-keying the old one. Stale entries are discarded
//     at pop time by comparing against the best-known map, so a superseded
//     goal entry is never reprocessed.
//   - A neighbor is enqueued only when undiscovered or reached via a
//     strictly lower accumulated cost; non-improving arrivals are dropped
//     on the spot.
//   - Among equal-cost entries the order is whatever the heap yields —
//     accepted nondeterminism when multiple optimal paths exist.
//   - All transient search nodes are garbage once the call returns,
//     regardless of success.
//
// Options
//
//   - WithMaxCost(c): stop exploring once the cheapest frontier entry
//     exceeds c (c ≥ 0; 0 keeps the default "no cap").
//
// Errors
//
//   - ErrNilAdjacency if the provider is nil.
//   - ErrBadMaxCost   if WithMaxCost is given a negative cap.
//
// Complexity (V = reachable cells, E = moves between them)
//
//   - Time:   O((V + E) log V) — each heap operation costs O(log N) with
//     N ≤ V + E under lazy decrease-key.
//   - Memory: O(V + E) — best-known map plus worst-case heap backlog.
package dijkstra
