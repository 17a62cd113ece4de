// Package grid treats a caller-owned flat row-major integer array as a
// square map and provides the adjacency providers used by flood fill and
// shortest-path search.
//
// What
//
//   - Grid: borrows a flat []int of size n×n plus the side length n;
//     value 0 marks a walkable/unvisited cell, any nonzero value an
//     obstacle or an already-colored region. The grid never copies and
//     never owns the buffer — algorithms only read it or relabel cells in
//     place for the duration of one call.
//   - Key: an integer (row, column) coordinate pair.
//   - Direction: one of the four compass labels 'N', 'S', 'E', 'W'.
//   - Step: a successor position carrying its traversal cost and the
//     direction label of the move that reaches it.
//   - Adjacency: a pure function of a position returning the up-to-four
//     orthogonal neighbors that are in-bounds and currently walkable.
//     Two variants share the contract: NewAdjacents yields a fixed
//     deterministic order (West, East, North, South), and
//     NewStochasticAdjacents shuffles that same set with an explicitly
//     seeded, injectable pseudo-random source.
//   - NewFillSpace adapts a Grid to the floodfill engine: walkable cells
//     match the fill predicate and are relabeled with a color code.
//
// Why
//
//	Grid maps are the common substrate of flood fill and grid pathfinding;
//	factoring bounds checks, indexing, and neighbor enumeration into one
//	place lets both engines stay free of coordinate arithmetic. The seeded
//	shuffle exists for reproducible testing of order-dependent visitation,
//	not for real randomness: repeated runs over identical input reproduce
//	identical output.
//
// Errors
//
//   - ErrBadSize   if the side length is negative.
//   - ErrCellCount if len(cells) ≠ n×n.
//   - Out-of-bounds lookups return zero values, never an error.
//
// Complexity
//
//   - At/Set/InBounds/Walkable: O(1).
//   - Adjacents: O(1) (at most four candidates).
package grid
