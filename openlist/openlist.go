package openlist

// List is the open-list contract: the frontier of not-yet-processed items.
// Implementations differ only in removal order; callers choose traversal
// behavior (depth-first vs breadth-first) by choosing the implementation.
type List[T any] interface {
	// Clear discards all pending items.
	Clear()

	// Push adds one item to the frontier.
	Push(item T)

	// Pop removes and returns one item. The second return is false when
	// the frontier is empty; the first is then the zero value of T.
	Pop() (T, bool)

	// Len reports how many items are pending.
	Len() int
}

// stack is a LIFO List backed by a slice; Pop returns the most recently
// pushed item, which makes consuming engines explore depth-first.
type stack[T any] struct {
	items []T
}

// NewStack returns an empty LIFO open list (depth-first order).
func NewStack[T any]() List[T] {
	return &stack[T]{}
}

func (s *stack[T]) Clear() {
	s.items = nil
}

func (s *stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

func (s *stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	// Zero the vacated slot so the backing array does not pin the item.
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, true
}

func (s *stack[T]) Len() int {
	return len(s.items)
}

// queue is a FIFO List backed by a slice with a head index; Pop returns
// the oldest pushed item, which makes consuming engines explore
// breadth-first. The head index avoids O(n) shifts on every Pop; the
// backing slice is released once drained.
type queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty FIFO open list (breadth-first order).
func NewQueue[T any]() List[T] {
	return &queue[T]{}
}

func (q *queue[T]) Clear() {
	q.items = nil
	q.head = 0
}

func (q *queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

func (q *queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// Drained: release the backing slice instead of growing it forever.
	if q.head == len(q.items) {
		q.items = nil
		q.head = 0
	}

	return item, true
}

func (q *queue[T]) Len() int {
	return len(q.items) - q.head
}
