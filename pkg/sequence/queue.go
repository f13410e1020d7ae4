package sequence

import "sync"

// Queue is an unbounded FIFO safe for concurrent producers. A single consumer
// empties it with Drain.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(values ...T) {
	q.mu.Lock()
	q.items = append(q.items, values...)
	q.mu.Unlock()
}

// Drain removes and returns every queued value in arrival order.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	out := q.items
	q.items = nil
	q.mu.Unlock()
	return out
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}
