package btree

import (
	"fmt"
	"strings"
)

// Get returns the value stored at key and whether key has been found.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if leaf, i, ok := t.find(key); ok {
		return leaf.value(i), true
	}
	var zero V
	return zero, false
}

// GetOr returns the value stored at key, or dflt if key is not present.
func (t *Tree[K, V]) GetOr(key K, dflt V) V {
	if v, ok := t.Get(key); ok {
		return v
	}
	return dflt
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, _, ok := t.find(key)
	return ok
}

// find descends to the leaf which would hold key.
func (t *Tree[K, V]) find(key K) (*leafNode[K, V], int, bool) {
	n := t.root
	for {
		switch x := n.(type) {
		case *innerNode[K, V]:
			i, _ := x.indexOf(key, t.cmp)
			if i >= len(x.children) {
				return nil, 0, false
			}
			n = x.children[i]
		case *leafNode[K, V]:
			i, found := x.indexOf(key, t.cmp)
			return x, i, found
		}
	}
}

// Min returns the smallest key of the tree.
func (t *Tree[K, V]) Min() (K, bool) {
	n := t.root
	for !n.isLeaf() {
		n = n.(*innerNode[K, V]).children[0]
	}
	if h := n.header(); h.size() > 0 {
		return h.keys[0], true
	}
	var zero K
	return zero, false
}

// Max returns the largest key of the tree. This is the cached max key of
// the root.
func (t *Tree[K, V]) Max() (K, bool) {
	if h := t.root.header(); h.size() > 0 {
		return h.maxKey(), true
	}
	var zero K
	return zero, false
}

// NextHigher returns the pair with the smallest key greater than key.
func (t *Tree[K, V]) NextHigher(key K) (K, V, bool) {
	it := t.Iterator()
	if it.SeekGE(key) && t.compare(it.Key(), key) == 0 {
		it.Next()
	}
	return it.pair()
}

// NextLower returns the pair with the largest key less than key.
func (t *Tree[K, V]) NextLower(key K) (K, V, bool) {
	it := t.Iterator()
	if it.SeekLE(key) && t.compare(it.Key(), key) == 0 {
		it.Prev()
	}
	return it.pair()
}

// PairOrNextHigher returns the pair at key, or the one with the smallest
// key greater than key.
func (t *Tree[K, V]) PairOrNextHigher(key K) (K, V, bool) {
	it := t.Iterator()
	it.SeekGE(key)
	return it.pair()
}

// PairOrNextLower returns the pair at key, or the one with the largest
// key less than key.
func (t *Tree[K, V]) PairOrNextLower(key K) (K, V, bool) {
	it := t.Iterator()
	it.SeekLE(key)
	return it.pair()
}

// KeysRange returns up to maxLength keys in [low, high] (or [low, high) if
// includeHigh is false). A maxLength <= 0 means no limit.
func (t *Tree[K, V]) KeysRange(low, high K, includeHigh bool, maxLength int) []K {
	var keys []K
	t.ForRange(low, high, includeHigh, func(key K, _ V) bool {
		keys = append(keys, key)
		return maxLength <= 0 || len(keys) < maxLength
	})
	return keys
}

// PairsRange is like KeysRange, but returns key/value pairs.
func (t *Tree[K, V]) PairsRange(low, high K, includeHigh bool, maxLength int) []Pair[K, V] {
	var pairs []Pair[K, V]
	t.ForRange(low, high, includeHigh, func(key K, value V) bool {
		pairs = append(pairs, Pair[K, V]{key, value})
		return maxLength <= 0 || len(pairs) < maxLength
	})
	return pairs
}

// ToSlice returns all pairs in ascending order.
func (t *Tree[K, V]) ToSlice() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.count)
	for k, v := range t.All() {
		pairs = append(pairs, Pair[K, V]{k, v})
	}
	return pairs
}

// String lists the pairs of the tree, e.g. "{1:a 2:b}".
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for k, v := range t.All() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		if t.unitValues {
			fmt.Fprintf(&b, "%v", k)
		} else {
			fmt.Fprintf(&b, "%v:%v", k, v)
		}
	}
	b.WriteByte('}')
	return b.String()
}
