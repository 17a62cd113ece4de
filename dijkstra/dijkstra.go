package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/lvlpath/grid"
)

// Run computes the cheapest move sequence from start to goal through the
// positions the adjacency provider exposes.
//
// Returns:
//
//   - path: ordered direction labels from start to goal. Empty (nil) when
//     start equals goal or when the goal is unreachable.
//   - err:  ErrNilAdjacency for a nil provider, ErrBadMaxCost for an
//     invalid option.
//
// Complexity: O((V+E) log V) time, O(V+E) memory.
func Run(adj grid.Adjacency, start, goal grid.Key, opts ...Option) ([]grid.Direction, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the provider.
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	// 3) Trivial query: nothing to move.
	if start == goal {
		return nil, nil
	}

	// 4) Seed the frontier with the start at cost 0.
	r := &runner{
		adj:  adj,
		opts: cfg,
		best: map[grid.Key]int64{start: 0},
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pathNode{key: start})

	// 5) Expand in non-decreasing cost order until the goal is dequeued
	//    or the frontier drains.
	return r.process(goal)
}

// runner holds the mutable state for a single search execution.
type runner struct {
	adj  grid.Adjacency     // successor provider; read-only during the run
	opts Options            // resolved configuration
	best map[grid.Key]int64 // position → best known accumulated cost
	pq   nodePQ             // min-heap of *pathNode, lazy decrease-key
}

// process is the core loop: pop the cheapest frontier entry, stop on the
// goal, otherwise relax its successors.
func (r *runner) process(goal grid.Key) ([]grid.Direction, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		cur := heap.Pop(&r.pq).(*pathNode)

		// 2) Discard stale lazy-decrease-key duplicates: a cheaper route
		//    to this position was recorded after this entry was pushed.
		//    This also guarantees a superseded goal entry is never
		//    reprocessed.
		if cur.cost > r.best[cur.key] {
			continue
		}

		// 3) Cost cap: the frontier is ordered, so once the cheapest
		//    entry exceeds the cap nothing closer remains.
		if cur.cost > r.opts.MaxCost {
			break
		}

		// 4) Goal reached: its accumulated cost is minimal. Reconstruct.
		if cur.key == goal {
			return buildPath(cur), nil
		}

		// 5) Relax each successor.
		for _, st := range r.adj.Adjacents(cur.key) {
			next := cur.cost + st.Cost

			// Enqueue only undiscovered positions or strictly cheaper
			// arrivals; non-improving alternatives are dropped here.
			if known, seen := r.best[st.Key]; seen && next >= known {
				continue
			}
			r.best[st.Key] = next
			heap.Push(&r.pq, &pathNode{
				key:    st.Key,
				cost:   next,
				dir:    st.Dir,
				parent: cur,
			})
		}
	}

	// 6) Frontier drained: the goal is unreachable. Empty result, no error.
	return nil, nil
}

// buildPath walks predecessor links from the goal node back to the start
// (the only node without a parent), collecting direction labels, then
// reverses them into start→goal order.
func buildPath(n *pathNode) []grid.Direction {
	var path []grid.Direction
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.dir)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathNode is a transient search node: a position, its accumulated cost
// from the start, the move label that reached it, and a back-reference to
// its predecessor on the best known path so far. Discarded after path
// extraction.
type pathNode struct {
	key    grid.Key
	cost   int64
	dir    grid.Direction
	parent *pathNode
}

// nodePQ is a min-heap of *pathNode ordered purely by accumulated cost;
// among equal-cost entries the order is unspecified.
type nodePQ []*pathNode

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *pathNode.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pathNode)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
