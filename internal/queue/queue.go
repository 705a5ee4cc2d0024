// Package queue provides the bounded max-heap used to keep the n closest
// candidates of a selection scan.
package queue

import (
	"bytes"
	"container/heap"
	"slices"

	"github.com/hupe1980/seedselect/distance"
)

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// PriorityQueueItem is a scanned candidate.
type PriorityQueueItem struct {
	ID       []byte         // ID is the candidate identifier, the tie-break key.
	Index    int            // Index is the candidate's position in the input.
	Distance distance.Value // Distance is the primary key.
}

// Compare orders items by (Distance, ID).
func Compare(a, b PriorityQueueItem) int {
	if c := a.Distance.Compare(b.Distance); c != 0 {
		return c
	}
	return bytes.Compare(a.ID, b.ID)
}

// PriorityQueue is a max-heap keyed by (Distance, ID): the root is the
// furthest item and therefore the first to be evicted.
type PriorityQueue struct {
	capacity int
	items    []PriorityQueueItem
}

// NewBounded returns an empty max-heap that holds at most capacity items.
func NewBounded(capacity int) *PriorityQueue {
	return &PriorityQueue{
		capacity: capacity,
		items:    make([]PriorityQueueItem, 0, capacity),
	}
}

// Capacity returns the maximum number of items kept.
func (pq *PriorityQueue) Capacity() int { return pq.capacity }

// TopItem returns the furthest item currently kept.
func (pq *PriorityQueue) TopItem() (PriorityQueueItem, bool) {
	if len(pq.items) == 0 {
		return PriorityQueueItem{}, false
	}
	return pq.items[0], true
}

// PushBounded offers item to the heap.
// Below capacity the item is always kept. At capacity it replaces the root
// only if its key is strictly smaller, so the kept set does not depend on
// the order items are offered in. It reports whether the item was kept.
func (pq *PriorityQueue) PushBounded(item PriorityQueueItem) bool {
	if pq.capacity <= 0 {
		return false
	}
	if len(pq.items) < pq.capacity {
		heap.Push(pq, item)
		return true
	}
	if Compare(item, pq.items[0]) >= 0 {
		return false
	}
	pq.items[0] = item
	heap.Fix(pq, 0)
	return true
}

// Drain empties the heap and returns its items ascending by (Distance, ID).
func (pq *PriorityQueue) Drain() []PriorityQueueItem {
	out := pq.items
	pq.items = nil
	slices.SortFunc(out, Compare)
	return out
}

// Len returns the number of elements in the heap.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	return Compare(pq.items[i], pq.items[j]) > 0
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push adds x to the heap. Use PushBounded to respect the capacity.
func (pq *PriorityQueue) Push(x any) {
	pq.items = append(pq.items, x.(PriorityQueueItem))
}

// Pop removes and returns the last element of the backing slice.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items[n-1] = PriorityQueueItem{}
	pq.items = pq.items[:n-1]
	return item
}
