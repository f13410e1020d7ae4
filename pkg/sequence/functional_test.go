package sequence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIteratorChain(t *testing.T) {
	it := From([]int{1, 2, 3, 4, 5, 6})

	evens := it.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens.Collect())
	assert.Equal(t, 3, evens.Count())
	assert.Equal(t, []int{2, 4}, evens.Take(2).Collect())

	first, ok := evens.First()
	assert.True(t, ok)
	assert.Equal(t, 2, first)

	assert.True(t, it.Any(func(v int) bool { return v > 5 }))
	assert.False(t, it.All(func(v int) bool { return v > 1 }))

	doubled := Map(it, func(v int) int { return v * 2 }).Collect()
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12}, doubled)
}

func TestIteratorStopsEarly(t *testing.T) {
	visited := 0
	it := FromSeq(func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			visited++
			if !yield(i) {
				return
			}
		}
	})
	v, ok := it.Find(func(v int) bool { return v == 3 })
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 4, visited)
}

func TestQueueDrainKeepsArrivalOrder(t *testing.T) {
	q := NewQueue[string]()
	q.Enqueue("a", "b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, q.Drain())
	assert.True(t, q.IsEmpty())
	assert.Nil(t, q.Drain())
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Enqueue(j)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Drain(), 800)
}
