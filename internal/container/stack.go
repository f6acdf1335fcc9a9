package container

// Stack is a LIFO container backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack creates an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

func (s *Stack[T]) Len() int { return len(s.items) }

// Push places item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmptyContainer
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return s.items[len(s.items)-1], nil
}

// ToSlice returns a snapshot ordered top to bottom.
func (s *Stack[T]) ToSlice() []T {
	result := make([]T, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		result = append(result, s.items[i])
	}
	return result
}
