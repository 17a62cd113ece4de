// Package tree defines the arena node model, handles, and sentinel errors
// for the tree subpackage of github.com/katalvlaran/lvlpath.
package tree

import (
	"errors"
	"math/rand"
)

// Sentinel errors for tree operations.
var (
	// ErrInvalidParent indicates NewNode was given a handle that does not
	// name a live node in this arena.
	ErrInvalidParent = errors.New("tree: parent handle is not a node of this tree")

	// ErrEmptyInput indicates Parse received text with no tokens.
	ErrEmptyInput = errors.New("tree: no tokens to parse")
)

// NodeID is an integer handle naming a node inside a Tree arena.
// Handles are only meaningful for the Tree that issued them.
type NodeID int

// Nil is the absent-node marker: the parent of the root, and the result
// of every failed lookup.
const Nil NodeID = -1

// node is one arena slot: a value, a back-reference to the parent stored
// as a handle, and the ordered handles of owned children.
type node struct {
	value    string
	parent   NodeID
	children []NodeID
}

// Tree is an arena of nodes. The zero value is not usable; construct via
// New or Parse. The arena is the single owner of every node.
type Tree struct {
	nodes []node
}

// Shuffler is the minimal pseudo-random surface a stochastic adjacency
// provider needs. *math/rand.Rand satisfies it; tests may substitute a
// fixed or mock sequence.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// defaultShuffleSeed is the fixed "zero" seed used when callers pass
// seed==0. Arbitrary but stable, to keep reproducible defaults.
const defaultShuffleSeed int64 = 1

// SeededShuffler returns a deterministic Shuffler.
// Policy: seed==0 ⇒ defaultShuffleSeed; otherwise the seed is used verbatim.
func SeededShuffler(seed int64) Shuffler {
	s := seed
	if s == 0 {
		s = defaultShuffleSeed
	}

	return rand.New(rand.NewSource(s))
}
