package grid

// New wraps a caller-owned flat row-major buffer as an n×n Grid.
// The buffer is borrowed, not copied: relabeling through the Grid is
// visible to the caller and vice versa.
// Returns ErrBadSize for a negative n, ErrCellCount when len(cells)
// differs from n×n. n==0 with an empty buffer yields a valid empty grid.
// Complexity: O(1).
func New(cells []int, n int) (*Grid, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	if len(cells) != n*n {
		return nil, ErrCellCount
	}

	return &Grid{cells: cells, n: n}, nil
}

// Size returns the side length n.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether k lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(k Key) bool {
	return k.Row >= 0 && k.Row < g.n && k.Col >= 0 && k.Col < g.n
}

// At returns the value stored at k, or 0 for an out-of-bounds key.
// Complexity: O(1).
func (g *Grid) At(k Key) int {
	if !g.InBounds(k) {
		return 0
	}

	return g.cells[g.index(k)]
}

// Set writes value at k; out-of-bounds keys are silently ignored.
// Complexity: O(1).
func (g *Grid) Set(k Key, value int) {
	if g.InBounds(k) {
		g.cells[g.index(k)] = value
	}
}

// Walkable reports whether k is in-bounds and currently unvisited
// (value 0). Obstacles and already-colored cells are not walkable.
// Complexity: O(1).
func (g *Grid) Walkable(k Key) bool {
	return g.InBounds(k) && g.cells[g.index(k)] == 0
}

// index maps k to its row-major offset: row*n + col.
func (g *Grid) index(k Key) int {
	return k.Row*g.n + k.Col
}

// KeyAt converts a row-major offset back to coordinates.
// Complexity: O(1).
func (g *Grid) KeyAt(idx int) Key {
	return Key{Row: idx / g.n, Col: idx % g.n}
}
