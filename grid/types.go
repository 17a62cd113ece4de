// Package grid defines core types, sentinel errors, and the seeded
// shuffle policy for the grid subpackage of github.com/katalvlaran/lvlpath.
package grid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for grid construction.
var (
	// ErrBadSize indicates a negative side length.
	ErrBadSize = errors.New("grid: side length must be non-negative")

	// ErrCellCount indicates len(cells) does not equal n×n.
	ErrCellCount = errors.New("grid: cell buffer length must equal n*n")
)

// Key identifies a cell in the grid by its integer coordinates.
type Key struct {
	Row, Col int
}

// Direction is a compass label for one orthogonal move.
type Direction byte

// The four orthogonal move labels.
const (
	North Direction = 'N'
	South Direction = 'S'
	East  Direction = 'E'
	West  Direction = 'W'
)

// DefaultStepCost is the uniform cost of one orthogonal move when no
// override is supplied.
const DefaultStepCost int64 = 10

// Step describes one reachable successor: the neighbor's coordinates, the
// cost of moving there, and the direction label of the move.
type Step struct {
	Key  Key
	Cost int64
	Dir  Direction
}

// Grid borrows a caller-owned flat row-major buffer of size n×n.
// Value 0 = walkable/unvisited; nonzero = obstacle or colored region.
// The caller owns and lifetime-manages the buffer; Grid only reads it or
// mutates cells in place.
type Grid struct {
	cells []int
	n     int
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
