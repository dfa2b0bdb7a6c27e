package btree

import "github.com/npillmayer/sorted/order"

// treeNode is implemented by *leafNode and *innerNode only.
type treeNode[K, V any] interface {
	isLeaf() bool
	header() *nodeHeader[K]
}

// nodeHeader holds the state common to both node kinds.
type nodeHeader[K any] struct {
	// keys are strictly increasing. For inner nodes keys[i] caches the max
	// key of children[i].
	keys []K
	// shared marks a node as reachable from more than one tree. All of its
	// descendants are then implicitly shared as well, whether marked or not.
	shared bool
}

type leafNode[K, V any] struct {
	nodeHeader[K]
	// values parallels keys. It stays nil for trees of unit values.
	values []V
}

func (l *leafNode[K, V]) isLeaf() bool           { return true }
func (l *leafNode[K, V]) header() *nodeHeader[K] { return &l.nodeHeader }

type innerNode[K, V any] struct {
	nodeHeader[K]
	children []treeNode[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool           { return false }
func (n *innerNode[K, V]) header() *nodeHeader[K] { return &n.nodeHeader }

func (h *nodeHeader[K]) size() int {
	return len(h.keys)
}

func (h *nodeHeader[K]) maxKey() K {
	return h.keys[len(h.keys)-1]
}

// indexOf binary-searches key. It returns the index of key if found,
// otherwise the index where key would have to be inserted.
func (h *nodeHeader[K]) indexOf(key K, cmp order.Comparator[K]) (int, bool) {
	lo, hi := 0, len(h.keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := cmp(h.keys[mid], key)
		switch {
		case c == order.Incomparable:
			panic(&order.KeyError{Key: key})
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

func (l *leafNode[K, V]) value(i int) V {
	if l.values == nil {
		var zero V
		return zero
	}
	return l.values[i]
}
