package tree

import (
	"github.com/katalvlaran/lvlpath/openlist"
)

// Find locates the first node whose value equals value, exploring from the
// root in the order dictated by the supplied open list: a Queue visits
// breadth-first, a Stack depth-first. The search logic itself is identical
// for both. Returns Nil when no node matches or open is nil.
//
// Complexity: O(n) time, O(n) frontier memory.
func (t *Tree) Find(value string, open openlist.List[NodeID]) NodeID {
	return t.FindFrom(t.Root(), value, open)
}

// FindFrom is Find restricted to the subtree rooted at start. A Nil or
// invalid start returns Nil.
func (t *Tree) FindFrom(start NodeID, value string, open openlist.List[NodeID]) NodeID {
	if !t.Valid(start) || open == nil {
		return Nil
	}

	open.Clear()
	open.Push(start)
	for {
		id, ok := open.Pop()
		if !ok {
			break
		}
		if t.nodes[id].value == value {
			return id
		}
		// The tree is acyclic with single ownership, so no visited set is
		// needed: each node enters the frontier at most once.
		for _, child := range t.nodes[id].children {
			open.Push(child)
		}
	}

	return Nil
}

// BFS locates the first node with the given value in breadth-first order.
func (t *Tree) BFS(value string) NodeID {
	return t.Find(value, openlist.NewQueue[NodeID]())
}

// DFS locates the first node with the given value in depth-first order.
// Children are pushed in order, so later siblings are explored first.
func (t *Tree) DFS(value string) NodeID {
	return t.Find(value, openlist.NewStack[NodeID]())
}
