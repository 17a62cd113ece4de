package tree

import (
	"github.com/katalvlaran/lvlpath/openlist"
)

// FillOption configures a FillSpace.
type FillOption func(*FillSpace)

// WithAdjacency overrides the adjacency provider used by the fill space,
// e.g. to substitute NewStochasticAdjacents for the deterministic default.
func WithAdjacency(adj Adjacency) FillOption {
	return func(fs *FillSpace) {
		if adj != nil {
			fs.adj = adj
		}
	}
}

// FillSpace adapts a Tree to the floodfill engine: nodes whose value
// equals target match the fill predicate and are relabeled with
// replacement. It satisfies floodfill.Space[NodeID] and, via Nearest,
// floodfill.Seeker[NodeID].
type FillSpace struct {
	t           *Tree
	target      string
	replacement string
	adj         Adjacency
}

// NewFillSpace builds a FillSpace over t that relabels target-valued
// nodes with replacement. The default adjacency is deterministic child
// order; override it with WithAdjacency.
func NewFillSpace(t *Tree, target, replacement string, opts ...FillOption) *FillSpace {
	fs := &FillSpace{
		t:           t,
		target:      target,
		replacement: replacement,
	}
	fs.adj = NewAdjacents(t, target)
	for _, opt := range opts {
		opt(fs)
	}

	return fs
}

// Matches reports whether id still carries the fill target value.
func (fs *FillSpace) Matches(id NodeID) bool {
	return fs.t.Valid(id) && fs.t.Value(id) == fs.target
}

// Fill relabels id with the replacement value.
func (fs *FillSpace) Fill(id NodeID) {
	fs.t.SetValue(id, fs.replacement)
}

// Adjacents returns the positions reachable in one fill step from id.
func (fs *FillSpace) Adjacents(id NodeID) []NodeID {
	return fs.adj.Adjacents(id)
}

// Nearest locates the target-valued node closest to start, breadth-first
// through the whole subtree (not only target-matching children). The
// second return is false when the subtree holds no target at all.
func (fs *FillSpace) Nearest(start NodeID) (NodeID, bool) {
	id := fs.t.FindFrom(start, fs.target, openlist.NewQueue[NodeID]())

	return id, id != Nil
}
