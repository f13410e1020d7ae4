package sequence

import "iter"

// Iterator is a lazy, chainable view over a sequence of T. Iteration stops as
// soon as a consumer returns false.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates an Iterator over a slice. The slice is not copied.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromSeq wraps an existing iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

// Seq returns the underlying sequence, usable in range-over-func loops.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

func (i *Iterator[T]) Collect() []T {
	var out []T
	for v := range i.seq {
		out = append(out, v)
	}
	return out
}

// Each applies action to every element eagerly.
func (i *Iterator[T]) Each(action func(T)) {
	for v := range i.seq {
		action(v)
	}
}

func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for v := range i.seq {
				if pred(v) && !yield(v) {
					return
				}
			}
		},
	}
}

// Find returns the first element matching pred.
func (i *Iterator[T]) Find(pred func(T) bool) (T, bool) {
	for v := range i.seq {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (i *Iterator[T]) Any(pred func(T) bool) bool {
	_, ok := i.Find(pred)
	return ok
}

func (i *Iterator[T]) All(pred func(T) bool) bool {
	for v := range i.seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

func (i *Iterator[T]) Take(n int) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			taken := 0
			for v := range i.seq {
				if !yield(v) {
					return
				}
				taken++
				if taken >= n {
					return
				}
			}
		},
	}
}

func (i *Iterator[T]) First() (T, bool) {
	for v := range i.seq {
		return v, true
	}
	var zero T
	return zero, false
}

func (i *Iterator[T]) Count() int {
	n := 0
	for range i.seq {
		n++
	}
	return n
}

// Map transforms every element with fn.
func Map[T, R any](it *Iterator[T], fn func(T) R) *Iterator[R] {
	return &Iterator[R]{
		seq: func(yield func(R) bool) {
			for v := range it.seq {
				if !yield(fn(v)) {
					return
				}
			}
		},
	}
}

// ToMap collects the iterator into a map keyed by keyFn.
func ToMap[T any, K comparable, V any](it *Iterator[T], keyFn func(T) K, valFn func(T) V) map[K]V {
	out := make(map[K]V)
	for v := range it.seq {
		out[keyFn(v)] = valFn(v)
	}
	return out
}
