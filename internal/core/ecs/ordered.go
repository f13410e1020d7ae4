package ecs

import (
	"iter"
	"slices"
)

// orderedMap keeps insertion order for iteration. Removal is linear in the
// number of keys.
type orderedMap[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{items: make(map[K]V)}
}

// Set stores v under k. A new key goes to the end; an existing key keeps its
// position.
func (m *orderedMap[K, V]) Set(k K, v V) bool {
	if _, ok := m.items[k]; ok {
		m.items[k] = v
		return false
	}
	m.items[k] = v
	m.keys = append(m.keys, k)
	return true
}

func (m *orderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

func (m *orderedMap[K, V]) Has(k K) bool {
	_, ok := m.items[k]
	return ok
}

func (m *orderedMap[K, V]) Delete(k K) bool {
	if _, ok := m.items[k]; !ok {
		return false
	}
	delete(m.items, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

func (m *orderedMap[K, V]) Len() int { return len(m.keys) }

func (m *orderedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

func (m *orderedMap[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.items[k])
	}
	return out
}

// All iterates over a snapshot of the keys, so the map may be modified
// during iteration.
func (m *orderedMap[K, V]) All() iter.Seq2[K, V] {
	keys := slices.Clone(m.keys)
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			v, ok := m.items[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
