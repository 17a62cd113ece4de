package tree

// Adjacency yields the positions reachable in one step from a node.
// For tree domains, "adjacent" means the direct children whose value
// equals a fixed target marker. A provider is a pure function of the
// position; consuming engines depend only on this interface, never on a
// concrete variant.
type Adjacency interface {
	// Adjacents returns zero or more successor handles for id.
	Adjacents(id NodeID) []NodeID
}

// adjacents is the deterministic variant: children are returned in their
// stored (serialized) order.
type adjacents struct {
	t      *Tree
	target string
}

// NewAdjacents returns a deterministic Adjacency bound to t that yields
// the direct children of a node whose value equals target.
func NewAdjacents(t *Tree, target string) Adjacency {
	return &adjacents{t: t, target: target}
}

// Adjacents returns the target-matching children of id in stored order.
// Complexity: O(children).
func (a *adjacents) Adjacents(id NodeID) []NodeID {
	var list []NodeID
	for _, child := range a.t.Children(id) {
		if a.t.Value(child) == a.target {
			list = append(list, child)
		}
	}

	return list
}

// stochasticAdjacents shuffles the deterministic set with an injected
// pseudo-random source. With a SeededShuffler the permutation sequence is
// reproducible across runs over identical input.
type stochasticAdjacents struct {
	adjacents
	shuffler Shuffler
}

// NewStochasticAdjacents returns an Adjacency that yields the same set as
// NewAdjacents but in shuffled order. A nil shuffler falls back to the
// fixed default seed.
func NewStochasticAdjacents(t *Tree, target string, shuffler Shuffler) Adjacency {
	if shuffler == nil {
		shuffler = SeededShuffler(0)
	}

	return &stochasticAdjacents{
		adjacents: adjacents{t: t, target: target},
		shuffler:  shuffler,
	}
}

// Adjacents returns the target-matching children of id in shuffled order.
// Complexity: O(children).
func (a *stochasticAdjacents) Adjacents(id NodeID) []NodeID {
	list := a.adjacents.Adjacents(id)
	a.shuffler.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})

	return list
}
