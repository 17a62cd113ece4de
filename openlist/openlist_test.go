package openlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlpath/openlist"
)

func TestStack_LIFOOrder(t *testing.T) {
	s := openlist.NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	// Most recently pushed comes out first.
	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := s.Pop()
	assert.False(t, ok, "drained stack must report empty")
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := openlist.NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	// Oldest pushed comes out first.
	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok, "drained queue must report empty")
}

func TestPop_EmptyReturnsZeroValue(t *testing.T) {
	s := openlist.NewStack[string]()
	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	q := openlist.NewQueue[string]()
	v, ok = q.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestClear_DiscardsPending(t *testing.T) {
	for name, l := range map[string]openlist.List[int]{
		"stack": openlist.NewStack[int](),
		"queue": openlist.NewQueue[int](),
	} {
		l.Push(10)
		l.Push(20)
		assert.Equal(t, 2, l.Len(), name)

		l.Clear()
		assert.Equal(t, 0, l.Len(), name)
		_, ok := l.Pop()
		assert.False(t, ok, name)

		// Still usable after Clear.
		l.Push(30)
		got, ok := l.Pop()
		assert.True(t, ok, name)
		assert.Equal(t, 30, got, name)
	}
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	q := openlist.NewQueue[int]()
	q.Push(1)
	q.Push(2)

	got, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	q.Push(3)
	assert.Equal(t, 2, q.Len())

	// FIFO order is preserved across interleaving.
	for _, want := range []int{2, 3} {
		got, ok = q.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, q.Len())
}

func TestLen_TracksFrontierSize(t *testing.T) {
	s := openlist.NewStack[int]()
	assert.Equal(t, 0, s.Len())
	s.Push(7)
	assert.Equal(t, 1, s.Len())
	s.Pop()
	assert.Equal(t, 0, s.Len())
}
