package sorted

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/npillmayer/sorted/order"
	"github.com/npillmayer/sorted/splay"
)

// SortedMap is a map which keeps its keys in order. The zero value is not
// usable, create maps with NewMap or NewMapRandomized.
type SortedMap[K, V any] struct {
	tree *splay.Tree[K, V]
}

// NewMap creates an empty map ordered by cmp. A nil cmp selects
// order.Default.
func NewMap[K, V any](cmp order.Comparator[K]) *SortedMap[K, V] {
	return &SortedMap[K, V]{tree: splay.New[K, V](cmp)}
}

// NewMapRandomized creates an empty map whose lookups restructure the
// underlying splay tree with probability p, drawing from src.
func NewMapRandomized[K, V any](cmp order.Comparator[K], p float64, src rand.Source) (*SortedMap[K, V], error) {
	tree, err := splay.NewRandomized[K, V](cmp, p, src)
	if err != nil {
		return nil, err
	}
	return &SortedMap[K, V]{tree: tree}, nil
}

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int { return m.tree.Len() }

// Get returns the value for key.
func (m *SortedMap[K, V]) Get(key K) (V, bool) { return m.tree.Get(key) }

// GetOr returns the value for key, or dflt if key is not present.
func (m *SortedMap[K, V]) GetOr(key K, dflt V) V {
	if v, ok := m.tree.Get(key); ok {
		return v
	}
	return dflt
}

// Set stores value at key and reports whether key is new.
func (m *SortedMap[K, V]) Set(key K, value V) bool { return m.tree.Set(key, value) }

// Delete removes key and reports whether it has been present.
func (m *SortedMap[K, V]) Delete(key K) bool { return m.tree.Delete(key) }

// Remove removes key and returns its value.
func (m *SortedMap[K, V]) Remove(key K) (V, bool) { return m.tree.Remove(key) }

// Has reports whether key is present.
func (m *SortedMap[K, V]) Has(key K) bool { return m.tree.Has(key) }

// Min returns the smallest key.
func (m *SortedMap[K, V]) Min() (K, bool) { return m.tree.Min() }

// Max returns the largest key.
func (m *SortedMap[K, V]) Max() (K, bool) { return m.tree.Max() }

// LowerBound returns the entry with the greatest key less than key.
func (m *SortedMap[K, V]) LowerBound(key K) (K, V, bool) { return m.tree.LowerBound(key) }

// UpperBound returns the entry with the smallest key greater than key.
func (m *SortedMap[K, V]) UpperBound(key K) (K, V, bool) { return m.tree.UpperBound(key) }

// Keys iterates over the keys in ascending order.
func (m *SortedMap[K, V]) Keys() iter.Seq[K] { return m.tree.Keys() }

// Values iterates over the values in ascending key order.
func (m *SortedMap[K, V]) Values() iter.Seq[V] { return m.tree.Values() }

// All iterates over the entries in ascending key order.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] { return m.tree.All() }

// Backward iterates over the entries in descending key order.
func (m *SortedMap[K, V]) Backward() iter.Seq2[K, V] { return m.tree.Backward() }

// Clear removes all entries.
func (m *SortedMap[K, V]) Clear() { m.tree.Clear() }

// PopMin removes the entry with the smallest key and returns it.
func (m *SortedMap[K, V]) PopMin() (K, V, error) {
	key, ok := m.tree.Min()
	if !ok {
		var v V
		return key, v, ErrEmpty
	}
	v, _ := m.tree.Remove(key)
	return key, v, nil
}

// String lists the entries, e.g. "{1:a 2:b}".
func (m *SortedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for k, v := range m.tree.All() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
