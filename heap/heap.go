/*
Package heap provides a binary min-heap over a pluggable comparator.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package heap

import (
	"iter"

	"github.com/npillmayer/sorted/order"
)

// Heap keeps the smallest item, as told by its comparator, on top.
type Heap[T any] struct {
	items []T
	cmp   order.Comparator[T]
}

// New creates a heap holding items. A nil cmp selects order.Default.
func New[T any](cmp order.Comparator[T], items ...T) *Heap[T] {
	if cmp == nil {
		cmp = order.Default[T]()
	}
	h := &Heap[T]{items: append([]T(nil), items...), cmp: cmp}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

func (h *Heap[T]) less(i, j int) bool {
	return order.Checked(h.cmp(h.items[i], h.items[j]), h.items[j]) < 0
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// Len returns the number of items.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push adds an item.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// Peek returns the top item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the top item.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items) - 1
	if n < 0 {
		return zero, false
	}
	top := h.items[0]
	h.items[0] = h.items[n]
	h.items[n] = zero
	h.items = h.items[:n]
	h.down(0)
	return top, true
}

// Replace removes the top item and pushes item in one step, returning the
// former top. On an empty heap Replace just pushes item.
func (h *Heap[T]) Replace(item T) (T, bool) {
	if len(h.items) == 0 {
		h.Push(item)
		var zero T
		return zero, false
	}
	top := h.items[0]
	h.items[0] = item
	h.down(0)
	return top, true
}

// Drain returns an iterator which pops the items in priority order.
// Stopping the iteration early leaves the remaining items in the heap.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(h.items) > 0 {
			item, _ := h.Pop()
			if !yield(item) {
				return
			}
		}
	}
}
