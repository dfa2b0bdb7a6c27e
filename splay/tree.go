package splay

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/npillmayer/sorted/order"
)

// DefaultProbability is the probability of a lookup splaying the tree, as
// used by New.
const DefaultProbability = 0.5

// ErrProbability is returned for a splay probability outside [0, 1].
var ErrProbability = errors.New("splay: probability must be in [0, 1]")

type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}

// Tree is an ordered map from keys of type K to values of type V.
type Tree[K, V any] struct {
	root   *node[K, V]
	count  int
	cmp    order.Comparator[K]
	p      float64
	rnd    *rand.Rand
	probes int
}

// New creates an empty tree ordered by cmp, splaying on every second lookup
// on average. A nil cmp selects order.Default.
func New[K, V any](cmp order.Comparator[K]) *Tree[K, V] {
	t, _ := NewRandomized[K, V](cmp, DefaultProbability, nil)
	return t
}

// NewRandomized creates an empty tree ordered by cmp, with lookups splaying
// the tree with probability p. Random decisions are drawn from src; if src is
// nil, a randomly seeded PCG source is used.
func NewRandomized[K, V any](cmp order.Comparator[K], p float64, src rand.Source) (*Tree[K, V], error) {
	if !(p >= 0 && p <= 1) {
		tracer().Errorf("splay: invalid probability %v", p)
		return nil, fmt.Errorf("%w: %v", ErrProbability, p)
	}
	if cmp == nil {
		cmp = order.Default[K]()
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Tree[K, V]{cmp: cmp, p: p, rnd: rand.New(src)}, nil
}

// compare counts probes and rejects incomparable keys.
func (t *Tree[K, V]) compare(a, b K) int {
	t.probes++
	return order.Checked(t.cmp(a, b), a)
}

// splay performs a top-down splay on key. Afterwards the root holds key, if
// present, or else the last node visited while searching for key, which is
// key's predecessor or successor.
func (t *Tree[K, V]) splay(key K) {
	x := t.root
	if x == nil {
		return
	}
	var header node[K, V] // header.right is the left chain, header.left the right chain
	l, r := &header, &header
	for {
		c := t.compare(key, x.key)
		if c < 0 {
			if x.left == nil {
				break
			}
			if t.compare(key, x.left.key) < 0 { // zig-zig: rotate right
				y := x.left
				x.left = y.right
				y.right = x
				x = y
				if x.left == nil {
					break
				}
			}
			r.left = x // link into right chain
			r = x
			x = x.left
		} else if c > 0 {
			if x.right == nil {
				break
			}
			if t.compare(key, x.right.key) > 0 { // zig-zig: rotate left
				y := x.right
				x.right = y.left
				y.left = x
				x = y
				if x.right == nil {
					break
				}
			}
			l.right = x // link into left chain
			l = x
			x = x.right
		} else {
			break
		}
	}
	l.right, r.left = x.left, x.right // reassemble
	x.left, x.right = header.right, header.left
	t.root = x
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Probes returns the number of key comparisons performed by the tree so far.
func (t *Tree[K, V]) Probes() int {
	return t.probes
}

// Get returns the value stored at key. With probability p it splays the
// tree on key, otherwise it leaves the tree unchanged.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	if t.root == nil {
		return zero, false
	}
	if t.p > 0 && t.rnd.Float64() < t.p {
		t.splay(key)
		if t.compare(key, t.root.key) == 0 {
			return t.root.value, true
		}
		return zero, false
	}
	if x := t.find(key); x != nil {
		return x.value, true
	}
	return zero, false
}

// find is a plain binary search.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	x := t.root
	for x != nil {
		switch c := t.compare(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Set stores value at key and reports whether key has been added. Set always
// splays the tree on key.
func (t *Tree[K, V]) Set(key K, value V) bool {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.count++
		return true
	}
	t.splay(key)
	c := t.compare(key, t.root.key)
	if c == 0 {
		t.root.key, t.root.value = key, value
		return false
	}
	n := &node[K, V]{key: key, value: value}
	if c < 0 {
		n.left, n.right = t.root.left, t.root
		t.root.left = nil
	} else {
		n.right, n.left = t.root.right, t.root
		t.root.right = nil
	}
	t.root = n
	t.count++
	return true
}

// Remove deletes key and returns the value it has been holding. If key is
// not present, Remove returns false and leaves the tree contents unchanged.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	var zero V
	if t.root == nil {
		return zero, false
	}
	t.splay(key)
	if t.compare(key, t.root.key) != 0 {
		return zero, false
	}
	removed := t.root
	if removed.left == nil {
		t.root = removed.right
	} else {
		// key is larger than any key on the left, so splaying the left
		// subtree brings its maximum to the top, with no right child
		t.root = removed.left
		t.splay(key)
		t.root.right = removed.right
	}
	t.count--
	return removed.value, true
}

// Delete removes key and reports whether it has been present.
func (t *Tree[K, V]) Delete(key K) bool {
	_, ok := t.Remove(key)
	return ok
}

// Clear removes all keys.
func (t *Tree[K, V]) Clear() {
	t.root, t.count = nil, 0
}

// LowerBound returns the pair with the greatest key strictly less than key.
func (t *Tree[K, V]) LowerBound(key K) (K, V, bool) {
	var k K
	var v V
	if t.root == nil {
		return k, v, false
	}
	t.splay(key)
	x := t.root
	if t.compare(x.key, key) >= 0 {
		if x = x.left; x == nil {
			return k, v, false
		}
		for x.right != nil {
			x = x.right
		}
	}
	return x.key, x.value, true
}

// UpperBound returns the pair with the smallest key strictly greater than
// key.
func (t *Tree[K, V]) UpperBound(key K) (K, V, bool) {
	var k K
	var v V
	if t.root == nil {
		return k, v, false
	}
	t.splay(key)
	x := t.root
	if t.compare(x.key, key) <= 0 {
		if x = x.right; x == nil {
			return k, v, false
		}
		for x.left != nil {
			x = x.left
		}
	}
	return x.key, x.value, true
}

// Min returns the smallest key. It does not restructure the tree.
func (t *Tree[K, V]) Min() (K, bool) {
	var zero K
	x := t.root
	if x == nil {
		return zero, false
	}
	for x.left != nil {
		x = x.left
	}
	return x.key, true
}

// Max returns the largest key. It does not restructure the tree.
func (t *Tree[K, V]) Max() (K, bool) {
	var zero K
	x := t.root
	if x == nil {
		return zero, false
	}
	for x.right != nil {
		x = x.right
	}
	return x.key, true
}

// All returns an iterator over all pairs in ascending key order. The tree
// must not be accessed while iterating, as lookups may restructure it.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return t.inorder(true)
}

// Backward returns an iterator over all pairs in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return t.inorder(false)
}

// inorder walks the tree with an explicit stack of pending nodes.
func (t *Tree[K, V]) inorder(ascending bool) iter.Seq2[K, V] {
	near := func(x *node[K, V]) *node[K, V] {
		if ascending {
			return x.left
		}
		return x.right
	}
	far := func(x *node[K, V]) *node[K, V] {
		if ascending {
			return x.right
		}
		return x.left
	}
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		for x := t.root; x != nil || len(stack) > 0; {
			for ; x != nil; x = near(x) {
				stack = append(stack, x)
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x.key, x.value) {
				return
			}
			x = far(x)
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
