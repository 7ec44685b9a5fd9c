package queue

import "github.com/ef-ds/deque"

// Q is a generic stack/queue structure backed by a ring deque.
// Stack operations (Push/Pop) and queue operations (Enqueue/Dequeue) are O(1).
type Q[T any] struct {
	items deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Stack Operations

// Push adds an item to the top of the stack (stack behavior)
func (q *Q[T]) Push(item T) {
	q.items.PushBack(item)
}

// Pop removes and returns the top item from the stack (stack behavior)
func (q *Q[T]) Pop() (T, bool) {
	v, ok := q.items.PopBack()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.items.Back()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Queue Operations

// Enqueue adds an item to the end of the queue (queue behavior)
func (q *Q[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the first item from the queue (queue behavior)
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.items.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Utility Methods

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.items.Len()
}

// Drain dequeues every item in order, calling fn for each one; returning false stops early
// and leaves the remaining items queued
func (q *Q[T]) Drain(fn func(item T, index int) (keepGoing bool)) {
	for i := 0; q.items.Len() > 0; i++ {
		item, _ := q.Dequeue()
		if !fn(item, i) {
			return
		}
	}
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items.Init()
}
