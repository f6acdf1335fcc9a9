package container

// Queue is a FIFO container backed by a slice.
type Queue[T any] struct {
	items []T
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

func (q *Queue[T]) Len() int { return len(q.items) }

// Enqueue adds item at the rear.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmptyContainer
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, nil
}

// Front returns the oldest item without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.items[0], nil
}

// Rear returns the newest item without removing it.
func (q *Queue[T]) Rear() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.items[len(q.items)-1], nil
}

// ToSlice returns a snapshot ordered front to rear.
func (q *Queue[T]) ToSlice() []T {
	result := make([]T, len(q.items))
	copy(result, q.items)
	return result
}
