package sorted

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sorted/order"
	"github.com/npillmayer/sorted/splay"
)

// SortedSet is a set which keeps its elements in order. The zero value is
// not usable, create sets with NewSet.
type SortedSet[T any] struct {
	tree *splay.Tree[T, struct{}]
}

// NewSet creates a set ordered by cmp, holding items. A nil cmp selects
// order.Default.
func NewSet[T any](cmp order.Comparator[T], items ...T) *SortedSet[T] {
	s := &SortedSet[T]{tree: splay.New[T, struct{}](cmp)}
	for _, item := range items {
		s.tree.Set(item, struct{}{})
	}
	return s
}

// Add inserts item and reports whether it has not been present before.
func (s *SortedSet[T]) Add(item T) bool { return s.tree.Set(item, struct{}{}) }

// Has reports whether item is an element of s.
func (s *SortedSet[T]) Has(item T) bool { return s.tree.Has(item) }

// Delete removes item and reports whether it has been present.
func (s *SortedSet[T]) Delete(item T) bool { return s.tree.Delete(item) }

// Len returns the number of elements.
func (s *SortedSet[T]) Len() int { return s.tree.Len() }

// Min returns the smallest element.
func (s *SortedSet[T]) Min() (T, bool) { return s.tree.Min() }

// Max returns the largest element.
func (s *SortedSet[T]) Max() (T, bool) { return s.tree.Max() }

// All iterates over the elements in ascending order.
func (s *SortedSet[T]) All() iter.Seq[T] { return s.tree.Keys() }

// Clear removes all elements.
func (s *SortedSet[T]) Clear() { s.tree.Clear() }

// PopMin removes the smallest element and returns it.
func (s *SortedSet[T]) PopMin() (T, error) {
	item, ok := s.tree.Min()
	if !ok {
		return item, ErrEmpty
	}
	s.tree.Delete(item)
	return item, nil
}

// String lists the elements, e.g. "{a b c}".
func (s *SortedSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for item := range s.tree.Keys() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte('}')
	return b.String()
}
