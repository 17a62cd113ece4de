package bellmanford

import (
	"fmt"
	"strconv"
	"strings"
)

// BellmanFord computes single-source shortest paths over a dense cost
// matrix. The matrix buffer is borrowed from the caller and only read;
// distance and predecessor tables are owned by the instance and are
// valid only after Run completes successfully for a given source.
type BellmanFord struct {
	matrix []int64 // dense size×size edge costs, row-major; Inf = no edge
	size   int

	dist   []int64
	pred   []int
	source int

	ran      bool // Run completed at least once
	feasible bool // last Run found no negative cycle
}

// New wraps a caller-owned flat row-major cost matrix of size×size edge
// weights. Use Inf for "no edge". size==0 with an empty matrix is valid
// and makes every Run trivially succeed.
// Returns ErrBadSize for a negative size, ErrMatrixSize on a length
// mismatch. Complexity: O(size).
func New(matrix []int64, size int) (*BellmanFord, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if len(matrix) != size*size {
		return nil, ErrMatrixSize
	}

	return &BellmanFord{
		matrix: matrix,
		size:   size,
		dist:   make([]int64, size),
		pred:   make([]int, size),
		source: None,
	}, nil
}

// Size returns the vertex count.
func (bf *BellmanFord) Size() int {
	return bf.size
}

// Run computes shortest distances from source to every vertex.
//
// Returns (true, nil) when no negative-weight cycle is reachable — the
// distance and predecessor tables are then valid until the next Run.
// Returns (false, nil) when one additional relaxation pass still improves
// some edge, i.e. a negative cycle exists; the tables are then invalid
// and PathTo/RouteTo refuse with ErrNegativeCycle.
// Returns ErrSourceRange for an out-of-range source on a non-empty matrix.
//
// Complexity: O(size³) time, O(size) memory.
func (bf *BellmanFord) Run(source int) (bool, error) {
	// 1) Trivial graph: nothing to relax, nothing to fail.
	if bf.size == 0 {
		bf.ran, bf.feasible = true, true

		return true, nil
	}
	if source < 0 || source >= bf.size {
		return false, fmt.Errorf("%w: %d", ErrSourceRange, source)
	}

	// 2) Initialize: every vertex unreachable except the source.
	for i := 0; i < bf.size; i++ {
		bf.dist[i] = Inf
		bf.pred[i] = None
	}
	bf.dist[source] = 0
	bf.source = source
	bf.ran = true

	// 3) Relax every edge (size−1) times. Each pass extends the set of
	//    vertices whose shortest path uses one more edge.
	for k := 0; k < bf.size-1; k++ {
		bf.relaxAll()
	}

	// 4) One additional full pass: any remaining improvement proves a
	//    negative-weight cycle reachable from the source.
	if bf.relaxable() {
		bf.feasible = false

		return false, nil
	}
	bf.feasible = true

	return true, nil
}

// relaxAll performs one full relaxation pass over all edges.
func (bf *BellmanFord) relaxAll() {
	for u := 0; u < bf.size; u++ {
		// A vertex not yet reached cannot improve anything; skipping the
		// whole row also keeps Inf out of the addition below.
		if bf.dist[u] == Inf {
			continue
		}
		for v := 0; v < bf.size; v++ {
			w := bf.matrix[u*bf.size+v]
			if w == Inf {
				continue
			}
			if bf.dist[u]+w < bf.dist[v] {
				bf.dist[v] = bf.dist[u] + w
				bf.pred[v] = u
			}
		}
	}
}

// relaxable reports whether any edge can still be relaxed.
func (bf *BellmanFord) relaxable() bool {
	for u := 0; u < bf.size; u++ {
		if bf.dist[u] == Inf {
			continue
		}
		for v := 0; v < bf.size; v++ {
			w := bf.matrix[u*bf.size+v]
			if w == Inf {
				continue
			}
			if bf.dist[u]+w < bf.dist[v] {
				return true
			}
		}
	}

	return false
}

// Distance returns the accumulated cost from the Run source to v, Inf for
// an unreachable vertex. Errors mirror PathTo.
func (bf *BellmanFord) Distance(v int) (int64, error) {
	if err := bf.check(v); err != nil {
		return 0, err
	}

	return bf.dist[v], nil
}

// Predecessor returns the vertex preceding v on its shortest path, None
// for the source and for unreachable vertices. Errors mirror PathTo.
func (bf *BellmanFord) Predecessor(v int) (int, error) {
	if err := bf.check(v); err != nil {
		return None, err
	}

	return bf.pred[v], nil
}

// PathTo reconstructs the shortest path to target as an ordered vertex
// sequence. The source vertex is dropped from the front by convention;
// an unreachable target yields an empty path.
// Complexity: O(path length).
func (bf *BellmanFord) PathTo(target int) ([]int, error) {
	path, err := bf.fullPath(target)
	if err != nil || len(path) == 0 {
		return nil, err
	}

	// Drop the source itself: the path names only the vertices to move
	// through. A path consisting of the source alone becomes empty.
	return path[1:], nil
}

// RouteTo reconstructs the shortest path to target as (from, to, cost)
// edge triples, including the leg out of the source. An unreachable
// target yields an empty route.
// Complexity: O(path length).
func (bf *BellmanFord) RouteTo(target int) ([]RouteStep, error) {
	path, err := bf.fullPath(target)
	if err != nil || len(path) < 2 {
		return nil, err
	}

	route := make([]RouteStep, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		route = append(route, RouteStep{
			From: from,
			To:   to,
			Cost: bf.matrix[from*bf.size+to],
		})
	}

	return route, nil
}

// fullPath walks predecessors backward from target to the source and
// reverses, keeping the source at the front. Empty for an unreachable
// target.
func (bf *BellmanFord) fullPath(target int) ([]int, error) {
	if err := bf.check(target); err != nil {
		return nil, err
	}
	if bf.dist[target] == Inf {
		return nil, nil
	}

	var path []int
	for at := target; at != None; at = bf.pred[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// check validates that results exist and v names a vertex.
func (bf *BellmanFord) check(v int) error {
	if !bf.ran {
		return ErrNotRun
	}
	if !bf.feasible {
		return ErrNegativeCycle
	}
	if v < 0 || v >= bf.size {
		return fmt.Errorf("%w: %d", ErrVertexRange, v)
	}

	return nil
}

// String renders the distance and predecessor tables as
// "[d₀,…] [p₀,…]", with "inf" for unreachable distances and "null" for
// absent predecessors. Meaningful after Run; before it the tables are
// still zeroed.
func (bf *BellmanFord) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < bf.size; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if bf.dist[i] == Inf {
			sb.WriteString("inf")
		} else {
			sb.WriteString(strconv.FormatInt(bf.dist[i], 10))
		}
	}
	sb.WriteString("] [")
	for i := 0; i < bf.size; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if bf.pred[i] == None {
			sb.WriteString("null")
		} else {
			sb.WriteString(strconv.Itoa(bf.pred[i]))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
