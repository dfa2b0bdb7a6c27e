package btree

import "iter"

// Iterator walks the pairs of a tree in either direction.
//
// An iterator keeps a node queue: for every level of the tree the slice of
// sibling nodes the current path runs through, and the index of the path
// node within it. Moving past the end of a leaf pops up the queue only as
// far as needed to find the next sibling, then descends again.
//
// It is not safe to continue using an Iterator after the tree has been
// modified. Iterators do not restart; create a new one instead.
type Iterator[K, V any] struct {
	tree  *Tree[K, V]
	queue []queueFrame[K, V]
	leaf  *leafNode[K, V]
	pos   int
}

type queueFrame[K, V any] struct {
	nodes []treeNode[K, V]
	index int
}

// Iterator returns a new, unpositioned iterator over the tree.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, pos: -1}
}

// reset positions the node queue at the root.
func (it *Iterator[K, V]) reset() {
	it.queue = append(it.queue[:0], queueFrame[K, V]{nodes: []treeNode[K, V]{it.tree.root}})
	it.leaf = nil
	it.pos = -1
}

func (it *Iterator[K, V]) top() treeNode[K, V] {
	f := it.queue[len(it.queue)-1]
	return f.nodes[f.index]
}

// descend follows child positions chosen by pick down to a leaf.
func (it *Iterator[K, V]) descend(pick func(*innerNode[K, V]) int) {
	for {
		inner, ok := it.top().(*innerNode[K, V])
		if !ok {
			break
		}
		it.queue = append(it.queue, queueFrame[K, V]{nodes: inner.children, index: pick(inner)})
	}
	it.leaf = it.top().(*leafNode[K, V])
}

func firstChild[K, V any](*innerNode[K, V]) int { return 0 }

func lastChild[K, V any](n *innerNode[K, V]) int { return len(n.children) - 1 }

// First positions the iterator at the smallest key.
func (it *Iterator[K, V]) First() bool {
	it.reset()
	it.descend(firstChild[K, V])
	it.pos = 0
	return it.Valid()
}

// Last positions the iterator at the largest key.
func (it *Iterator[K, V]) Last() bool {
	it.reset()
	it.descend(lastChild[K, V])
	it.pos = len(it.leaf.keys) - 1
	return it.Valid()
}

// SeekGE positions the iterator at the first key greater than or equal to key.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	it.reset()
	it.descend(it.childFor(key))
	it.pos, _ = it.leaf.indexOf(key, it.tree.cmp)
	if it.pos >= len(it.leaf.keys) {
		return it.stepLeaf(true)
	}
	return true
}

// SeekLE positions the iterator at the last key less than or equal to key.
func (it *Iterator[K, V]) SeekLE(key K) bool {
	it.reset()
	it.descend(it.childFor(key))
	i, found := it.leaf.indexOf(key, it.tree.cmp)
	if !found {
		i--
	}
	it.pos = i
	if it.pos < 0 {
		return it.stepLeaf(false)
	}
	return it.Valid()
}

func (it *Iterator[K, V]) childFor(key K) func(*innerNode[K, V]) int {
	return func(inner *innerNode[K, V]) int {
		i, _ := inner.indexOf(key, it.tree.cmp)
		return min(i, len(inner.children)-1)
	}
}

// Next moves to the next larger key.
func (it *Iterator[K, V]) Next() bool {
	if it.leaf == nil {
		return false
	}
	it.pos++
	if it.pos < len(it.leaf.keys) {
		return true
	}
	return it.stepLeaf(true)
}

// Prev moves to the next smaller key.
func (it *Iterator[K, V]) Prev() bool {
	if it.leaf == nil {
		return false
	}
	it.pos--
	if it.pos >= 0 {
		return true
	}
	return it.stepLeaf(false)
}

// stepLeaf moves to the adjacent leaf in the given direction. It pops up
// the node queue to the lowest level with a sibling left to visit.
func (it *Iterator[K, V]) stepLeaf(forward bool) bool {
	level := len(it.queue) - 1
	for ; level >= 0; level-- {
		f := &it.queue[level]
		if forward && f.index+1 < len(f.nodes) {
			f.index++
			break
		}
		if !forward && f.index > 0 {
			f.index--
			break
		}
	}
	if level < 0 {
		it.leaf, it.pos = nil, -1
		return false
	}
	it.queue = it.queue[:level+1]
	if forward {
		it.descend(firstChild[K, V])
		it.pos = 0
	} else {
		it.descend(lastChild[K, V])
		it.pos = len(it.leaf.keys) - 1
	}
	return it.Valid()
}

// Valid reports whether the iterator is positioned at a pair.
func (it *Iterator[K, V]) Valid() bool {
	return it.leaf != nil && it.pos >= 0 && it.pos < len(it.leaf.keys)
}

// Key returns the key at the current position. It is illegal to call Key
// on an invalid iterator.
func (it *Iterator[K, V]) Key() K {
	return it.leaf.keys[it.pos]
}

// Value returns the value at the current position. It is illegal to call
// Value on an invalid iterator.
func (it *Iterator[K, V]) Value() V {
	return it.leaf.value(it.pos)
}

func (it *Iterator[K, V]) pair() (K, V, bool) {
	if !it.Valid() {
		var k K
		var v V
		return k, v, false
	}
	return it.Key(), it.Value(), true
}

// All returns an iterator over all pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		for ok := it.First(); ok; ok = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// From returns an iterator over the pairs with keys >= key, ascending.
func (t *Tree[K, V]) From(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		for ok := it.SeekGE(key); ok; ok = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over all pairs in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		for ok := it.Last(); ok; ok = it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// BackwardFrom returns an iterator over the pairs with keys <= key,
// descending.
func (t *Tree[K, V]) BackwardFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		for ok := it.SeekLE(key); ok; ok = it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending key order.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}
