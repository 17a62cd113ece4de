// Package tree provides an arena-backed generic n-ary tree with text
// (de)serialization, root-path reconstruction, open-list-driven search,
// and adjacency providers for flood-fill style traversals.
//
// What
//
//   - Tree: an arena owning every node; nodes are addressed by NodeID
//     handles, parents stored as NodeID (Nil for the root), children as
//     an ordered []NodeID. Exactly one owner — the arena — so no dangling
//     back-references are possible and destroying the Tree destroys the
//     whole structure at once.
//   - Text codec: String serializes a tree as "value {childCount child…} "
//     recursively; Parse is the inverse and is deliberately lenient —
//     a missing "{" stops descent and yields that node with no children,
//     matching best-effort stream parsing rather than hard failure.
//   - Path(id): ordered value sequence from the root down to id.
//   - Find / BFS / DFS: one search routine written against
//     openlist.List[NodeID]; a Queue yields breadth-first lookup, a Stack
//     depth-first, with no change to the search logic.
//   - Adjacency providers: NewAdjacents returns the direct children whose
//     value equals a fixed target marker; NewStochasticAdjacents shuffles
//     that same set with an explicitly seeded, injectable source so that
//     repeated runs over identical input reproduce identical output.
//   - NewFillSpace adapts a Tree to the floodfill engine: target-matching
//     nodes are relabeled with a replacement value, and the nearest
//     matching seed is located breadth-first when the start doesn't match.
//
// Why
//
//	Hierarchical data with parent back-references invites cyclic-ownership
//	bugs when nodes own their children yet point back up. The arena keeps
//	ownership trivial: handles cannot dangle, the parent/child relationship
//	is consistent by construction (nodes are only created through NewNode
//	or Parse), and the tree stays acyclic with a single root.
//
// Invariants
//
//   - A child's Parent equals the node holding it in Children.
//   - No node appears under two parents; the structure is acyclic.
//   - A freshly built tree has exactly one root (Parent == Nil).
//
// Errors
//
//   - ErrInvalidParent  if NewNode is given an unknown parent handle.
//   - ErrEmptyInput     if Parse receives no tokens at all.
//   - Not-found lookups return Nil (or zero values), never an error.
//
// Complexity (n = number of nodes)
//
//   - NewNode, Value, SetValue, Parent, Children: O(1).
//   - Path: O(depth). Find/BFS/DFS: O(n). String/Parse: O(total text).
package tree
