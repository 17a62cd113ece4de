// Package bellmanford defines sentinel values, result types, and errors
// for dense-matrix shortest-path computation.
package bellmanford

import (
	"errors"
	"math"
)

// Inf is the reserved "no edge / unreachable" cost sentinel. It cannot
// collide with legitimate finite costs, and relaxation never adds to it.
const Inf int64 = math.MaxInt64

// None is the reserved "no predecessor" vertex sentinel, distinguishable
// from every legitimate vertex index.
const None = -1

// Sentinel errors for Bellman-Ford operations.
var (
	// ErrBadSize indicates a negative vertex count.
	ErrBadSize = errors.New("bellmanford: size must be non-negative")

	// ErrMatrixSize indicates len(matrix) does not equal size×size.
	ErrMatrixSize = errors.New("bellmanford: matrix length must equal size*size")

	// ErrSourceRange indicates the source vertex index is out of range.
	ErrSourceRange = errors.New("bellmanford: source vertex out of range")

	// ErrVertexRange indicates a target vertex index is out of range.
	ErrVertexRange = errors.New("bellmanford: vertex out of range")

	// ErrNotRun indicates results were queried before a completed Run.
	ErrNotRun = errors.New("bellmanford: Run has not completed for any source")

	// ErrNegativeCycle indicates results were queried after Run detected
	// a negative-weight cycle, which leaves shortest paths undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle present")
)

// RouteStep is one edge of a reconstructed route: the endpoints and the
// matrix cost of traversing between them.
type RouteStep struct {
	From, To int
	Cost     int64
}
