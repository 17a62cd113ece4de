// Package lvlpath is a compact toolkit for traversing and labeling
// in-memory structures — trees, grids and dense cost matrices.
//
// 🚀 What is lvlpath?
//
//	A small, deterministic, zero-I/O library that brings together:
//		• tree/        — arena-backed n-ary trees, text (de)serialization,
//		                 root-path reconstruction, BFS/DFS lookup
//		• openlist/    — one frontier contract, two orders: LIFO (depth-first)
//		                 and FIFO (breadth-first)
//		• grid/        — flat row-major grids, compass directions, step costs,
//		                 deterministic and seeded-shuffle adjacency
//		• floodfill/   — recursive and iterative region relabeling, generic
//		                 over the underlying space
//		• dijkstra/    — uniform-cost grid search returning direction labels
//		• bellmanford/ — dense-matrix shortest paths with negative-cycle
//		                 detection and route reconstruction
//
// ✨ Why choose lvlpath?
//
//   - Deterministic – every pseudo-random choice is explicitly seeded and
//     injectable, so identical input always yields identical output
//   - Borrow, don't own – grids and cost matrices stay caller-owned;
//     algorithms only read or relabel them in place
//   - One engine, many orders – traversals are written once against the
//     open-list contract and swap DFS/BFS behavior by swapping the container
//   - Pure Go – no cgo, single-threaded, no hidden global state
//
// Quick ASCII example — flood fill routing around an obstacle:
//
//	0 0 0        5 5 5
//	0 1 0   ⇒    5 1 5
//	0 0 0        5 5 5
//
// Every algorithm runs to completion within one call and reports failure
// synchronously: absent results come back as zero values or empty slices,
// infeasibility as empty paths or a boolean flag, and malformed tree text
// is parsed best-effort rather than rejected.
package lvlpath
