// Package openlist provides the frontier abstraction shared by every
// traversal engine in lvlpath: a uniform push/pop/clear container with
// two interchangeable orders.
//
// What
//
//   - List[T]: the open-list contract — Clear, Push, Pop, Len.
//   - NewStack[T](): LIFO order; drives depth-first exploration.
//   - NewQueue[T](): FIFO order; drives breadth-first exploration.
//
// Why
//
//	Traversal engines (tree.Find, floodfill.Iterative) are written once
//	against List[T] and are parameterized by which implementation is
//	supplied, so swapping DFS/BFS behavior requires no change to the
//	traversal logic itself.
//
// Emptiness
//
//	Pop signals exhaustion with the comma-ok idiom: the second return is
//	false (and the first is the zero value of T) when no items remain.
//	There is no error path; an empty frontier is a normal terminal state.
//
// Complexity
//
//   - Push: amortized O(1) for both implementations.
//   - Pop:  O(1) (the queue advances a head index; memory is reclaimed
//     on Clear or once the backlog is drained).
//   - Clear: O(1) (drops the backing slice).
//
// Both implementations are single-goroutine containers, matching the
// synchronous execution model of the algorithms that consume them.
package openlist
