// Package container provides the linear data structures the inventory is
// built on: a singly linked list, a LIFO stack and a FIFO queue.
package container

import "github.com/pkg/errors"

var (
	// ErrEmptyContainer is returned by pop, peek, dequeue, front and rear on an empty container.
	ErrEmptyContainer = errors.New("container is empty")
	// ErrIndexOutOfRange is returned by positional LinkedList operations.
	ErrIndexOutOfRange = errors.New("index out of range")
)
