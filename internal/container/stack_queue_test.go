package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack[int]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	assert.Empty(t, s.ToSlice())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{3, 2, 1}, s.ToSlice())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len(), "peek is non-destructive")

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

func TestQueue(t *testing.T) {
	q := NewQueue[string]()

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = q.Front()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = q.Rear()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", front)
	rear, err := q.Rear()
	require.NoError(t, err)
	assert.Equal(t, "c", rear)

	snapshot := q.ToSlice()
	assert.Equal(t, []string{"a", "b", "c"}, snapshot)

	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "a", got)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, snapshot, "snapshot unaffected by dequeue")

	q.Enqueue("d")
	assert.Equal(t, []string{"b", "c", "d"}, q.ToSlice())
}
