package fretboard

// Queue keeps the most recent values up to a fixed capacity. Pushing onto a
// full queue evicts the oldest value.
type Queue[T any] struct {
	capacity int
	items    []T
}

func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{capacity: capacity, items: make([]T, 0, capacity)}
}

// NewRecent is the two slot accumulator for the last notes picked.
func NewRecent[T any]() *Queue[T] {
	return NewQueue[T](2)
}

func (q *Queue[T]) Push(v T) {
	if len(q.items) == q.capacity {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, v)
}

// Items returns a copy, oldest first.
func (q *Queue[T]) Items() []T {
	res := make([]T, len(q.items))
	copy(res, q.items)
	return res
}

func (q *Queue[T]) Len() int { return len(q.items) }

func (q *Queue[T]) Full() bool { return len(q.items) == q.capacity }

func (q *Queue[T]) Clear() { q.items = q.items[:0] }
