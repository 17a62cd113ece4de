package grid

// Adjacency yields the positions reachable in one move from a cell.
// For grid domains, "adjacent" means the up-to-four orthogonal neighbors
// that are in-bounds and currently walkable. A provider is a pure
// function of the position; consuming engines depend only on this
// interface, never on a concrete variant.
type Adjacency interface {
	// Adjacents returns zero or more successor steps for k.
	Adjacents(k Key) []Step
}

// AdjOption configures an adjacency provider.
type AdjOption func(*adjacents)

// WithStepCost overrides the uniform per-move cost (DefaultStepCost).
// Non-positive values are ignored.
func WithStepCost(cost int64) AdjOption {
	return func(a *adjacents) {
		if cost > 0 {
			a.cost = cost
		}
	}
}

// adjacents is the deterministic variant. Candidates are probed in the
// fixed order West, East, North, South, so repeated calls over identical
// input reproduce identical output.
type adjacents struct {
	g    *Grid
	cost int64
}

// NewAdjacents returns a deterministic Adjacency bound to g.
func NewAdjacents(g *Grid, opts ...AdjOption) Adjacency {
	a := &adjacents{g: g, cost: DefaultStepCost}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Adjacents returns the walkable orthogonal neighbors of k, each carrying
// the move cost and its compass label. Out-of-bounds and blocked
// candidates are skipped silently. Complexity: O(1).
func (a *adjacents) Adjacents(k Key) []Step {
	var list []Step

	candidates := [4]Step{
		{Key: Key{Row: k.Row, Col: k.Col - 1}, Cost: a.cost, Dir: West},
		{Key: Key{Row: k.Row, Col: k.Col + 1}, Cost: a.cost, Dir: East},
		{Key: Key{Row: k.Row - 1, Col: k.Col}, Cost: a.cost, Dir: North},
		{Key: Key{Row: k.Row + 1, Col: k.Col}, Cost: a.cost, Dir: South},
	}
	for _, c := range candidates {
		if a.g.Walkable(c.Key) {
			list = append(list, c)
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
func NewStochasticAdjacents(g *Grid, shuffler Shuffler, opts ...AdjOption) Adjacency {
	if shuffler == nil {
		shuffler = SeededShuffler(0)
	}
	a := &stochasticAdjacents{
		adjacents: adjacents{g: g, cost: DefaultStepCost},
		shuffler:  shuffler,
	}
	for _, opt := range opts {
		opt(&a.adjacents)
	}

	return a
}

// Adjacents returns the walkable orthogonal neighbors of k in shuffled
// order. Complexity: O(1).
func (a *stochasticAdjacents) Adjacents(k Key) []Step {
	list := a.adjacents.Adjacents(k)
	a.shuffler.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})

	return list
}
