package grid

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

// FillSpace adapts a Grid to the floodfill engine: walkable cells match
// the fill predicate and are relabeled with the color code. It satisfies
// floodfill.Space[Key].
type FillSpace struct {
	g     *Grid
	color int
	adj   Adjacency
}

// NewFillSpace builds a FillSpace over g that colors walkable cells with
// color. The default adjacency is the deterministic West/East/North/South
// order; override it with WithAdjacency.
func NewFillSpace(g *Grid, color int, opts ...FillOption) *FillSpace {
	fs := &FillSpace{g: g, color: color}
	fs.adj = NewAdjacents(g)
	for _, opt := range opts {
		opt(fs)
	}

	return fs
}

// Matches reports whether k is still an unvisited walkable cell.
// Out-of-bounds keys never match.
func (fs *FillSpace) Matches(k Key) bool {
	return fs.g.Walkable(k)
}

// Fill relabels k with the color code.
func (fs *FillSpace) Fill(k Key) {
	fs.g.Set(k, fs.color)
}

// Adjacents returns the positions reachable in one fill step from k.
// Cost and direction labels are irrelevant to flood fill, so only the
// coordinates are kept.
func (fs *FillSpace) Adjacents(k Key) []Key {
	steps := fs.adj.Adjacents(k)
	if len(steps) == 0 {
		return nil
	}
	keys := make([]Key, len(steps))
	for i, st := range steps {
		keys[i] = st.Key
	}

	return keys
}
