package sorted

import (
	"iter"

	"github.com/npillmayer/sorted/splay"
)

// Collection is the capability contract of containers of elements.
type Collection[T any] interface {
	Len() int
	Has(T) bool
	All() iter.Seq[T]
}

// Mapping is the capability contract of key/value containers.
type Mapping[K, V any] interface {
	Len() int
	Has(K) bool
	Get(K) (V, bool)
	Set(K, V) bool
	Delete(K) bool
	All() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
}

var (
	_ Mapping[int, int] = (*SortedMap[int, int])(nil)
	_ Mapping[int, int] = (*splay.Tree[int, int])(nil)
	_ Collection[int]   = (*SortedSet[int])(nil)
)
