// Package floodfill relabels the connected region reachable from a seed
// position through a matching predicate, generically over the underlying
// space (tree nodes, grid cells, or anything else satisfying Space).
//
// What
//
//   - Space[P]: the capability contract the engine depends on — Matches
//     (does this position still carry the fill target?), Fill (relabel
//     it), and Adjacents (positions reachable in one step).
//   - Seeker[P]: optional capability. When the start position does not
//     match the target, the engine asks a Seeker for the nearest matching
//     position (breadth-first in the provided adapters); a space without
//     the capability simply makes a non-matching start a no-op.
//   - Recursive: fills through the call stack.
//   - Iterative: fills through an explicit openlist.List frontier. A LIFO
//     open list reproduces the recursive visitation order; a FIFO open
//     list performs a level-order fill. Both are valid flood fills that
//     differ only in visitation order — the final relabeled set of a
//     connected region is order-independent, so the two forms always
//     produce the same final labeling for the same input.
//
// Guards
//
//	Nil spaces and nil open lists are rejected with sentinel errors; a
//	start with no reachable target terminates with no effect; positions
//	that stopped matching (already filled, out of bounds, obstacles) are
//	silently skipped, never erroring.
//
// Errors
//
//   - ErrNilSpace    if the space is nil.
//   - ErrNilOpenList if Iterative receives a nil frontier.
//
// Complexity (R = cells/nodes of the filled region, d = max adjacency)
//
//   - Time:   O(R·d) — every region position is relabeled once and its
//     neighbors enumerated once.
//   - Memory: O(R) call-stack depth (Recursive) or frontier (Iterative).
package floodfill
