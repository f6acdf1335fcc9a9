package container

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list that keeps insertion order.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head *node[T]
	size int
}

// NewLinkedList creates an empty linked list
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// IsEmpty reports whether the list has no elements
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Append adds value at the tail.
func (l *LinkedList[T]) Append(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head = n
		l.size++
		return
	}

	current := l.head
	for current.next != nil {
		current = current.next
	}
	current.next = n
	l.size++
}

// Prepend adds value at the head.
func (l *LinkedList[T]) Prepend(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.size++
}

// InsertAt inserts value so that it ends up at position index.
// Valid indexes are 0..Len() inclusive.
func (l *LinkedList[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d (size %d)", index, l.size)
	}

	if index == 0 {
		l.Prepend(value)
		return nil
	}

	prev := l.head
	for i := 0; i < index-1; i++ {
		prev = prev.next
	}
	prev.next = &node[T]{value: value, next: prev.next}
	l.size++
	return nil
}

// DeleteFirst unlinks the first element for which match returns true.
// It reports whether an element was removed.
func (l *LinkedList[T]) DeleteFirst(match func(T) bool) bool {
	if l.head == nil {
		return false
	}

	if match(l.head.value) {
		l.head = l.head.next
		l.size--
		return true
	}

	for current := l.head; current.next != nil; current = current.next {
		if match(current.next.value) {
			current.next = current.next.next
			l.size--
			return true
		}
	}

	return false
}

// FindIndex returns the position of the first element matching, or -1.
func (l *LinkedList[T]) FindIndex(match func(T) bool) int {
	index := 0
	for current := l.head; current != nil; current = current.next {
		if match(current.value) {
			return index
		}
		index++
	}
	return -1
}

// Find returns the first element matching.
func (l *LinkedList[T]) Find(match func(T) bool) (T, bool) {
	for current := l.head; current != nil; current = current.next {
		if match(current.value) {
			return current.value, true
		}
	}
	var zero T
	return zero, false
}

// Get returns the element at index.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "get %d (size %d)", index, l.size)
	}

	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current.value, nil
}

// Filter returns, in list order, every element for which match returns true.
func (l *LinkedList[T]) Filter(match func(T) bool) []T {
	result := make([]T, 0)
	for current := l.head; current != nil; current = current.next {
		if match(current.value) {
			result = append(result, current.value)
		}
	}
	return result
}

// Each calls fn for every element in list order.
func (l *LinkedList[T]) Each(fn func(T)) {
	for current := l.head; current != nil; current = current.next {
		fn(current.value)
	}
}

// ToSlice returns a snapshot of the list in order.
func (l *LinkedList[T]) ToSlice() []T {
	result := make([]T, 0, l.size)
	l.Each(func(v T) {
		result = append(result, v)
	})
	return result
}

// String renders the list as "a -> b -> c", or "Empty".
func (l *LinkedList[T]) String() string {
	if l.IsEmpty() {
		return "Empty"
	}
	parts := make([]string, 0, l.size)
	l.Each(func(v T) {
		parts = append(parts, fmt.Sprint(v))
	})
	return strings.Join(parts, " -> ")
}
