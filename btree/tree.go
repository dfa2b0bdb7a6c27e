package btree

import (
	"fmt"

	"github.com/npillmayer/sorted/order"
)

// Tree is an in-memory B+ tree mapping keys of type K to values of type V.
//
// Trees with V = struct{} are treated as sets and do not allocate value
// storage in their leaves.
type Tree[K, V any] struct {
	cfg         Config[K]
	cmp         order.Comparator[K]
	maxNodeSize int
	root        treeNode[K, V]
	count       int
	unitValues  bool
	frozen      bool
	editing     bool // inside an EditRange callback
	illegalEdit bool // a mutation has been attempted while editing
}

// Pair is a key/value entry of a tree.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V]{
		cfg:         cfg,
		cmp:         cfg.Compare,
		maxNodeSize: cfg.MaxNodeSize,
	}
	var zero V
	_, t.unitValues = any(zero).(struct{})
	t.root = t.newLeaf()
	return t, nil
}

// FromPairs creates a tree and inserts pairs, later pairs overwriting
// earlier ones with an equal key.
func FromPairs[K, V any](cfg Config[K], pairs ...Pair[K, V]) (*Tree[K, V], error) {
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		t.set(p.Key, p.Value, true)
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of inner node levels above the leaves. A tree
// consisting of a single leaf has height 0.
func (t *Tree[K, V]) Height() int {
	h := 0
	for n := t.root; !n.isLeaf(); n = n.(*innerNode[K, V]).children[0] {
		h++
	}
	return h
}

// compare wraps the comparator, rejecting incomparable keys.
func (t *Tree[K, V]) compare(a, b K) int {
	return order.Checked(t.cmp(a, b), b)
}

// checkMutable returns an error if the tree may not be modified right now.
func (t *Tree[K, V]) checkMutable() error {
	if t.frozen {
		return ErrFrozen
	}
	if t.editing {
		t.illegalEdit = true
		tracer().Errorf("btree: mutation attempted from inside a range edit")
		return fmt.Errorf("%w: mutation from inside callback", ErrIllegalEdit)
	}
	return nil
}

// Set stores value at key, replacing an existing value and the existing key
// object. It returns true if key has not been part of the tree before.
func (t *Tree[K, V]) Set(key K, value V) (added bool, err error) {
	if err := t.checkMutable(); err != nil {
		return false, err
	}
	return t.set(key, value, true), nil
}

// SetIfAbsent stores value at key only if key is not yet part of the tree.
// It returns true if the pair has been added.
func (t *Tree[K, V]) SetIfAbsent(key K, value V) (added bool, err error) {
	if err := t.checkMutable(); err != nil {
		return false, err
	}
	return t.set(key, value, false), nil
}

// SetPairs stores a batch of pairs and returns the number of keys added.
func (t *Tree[K, V]) SetPairs(pairs []Pair[K, V], overwrite bool) (int, error) {
	if err := t.checkMutable(); err != nil {
		return 0, err
	}
	added := 0
	for _, p := range pairs {
		if t.set(p.Key, p.Value, overwrite) {
			added++
		}
	}
	return added, nil
}

func (t *Tree[K, V]) set(key K, value V, overwrite bool) bool {
	if t.root.header().shared {
		t.root = t.cloneNode(t.root)
	}
	added, right := t.setNode(t.root, key, value, overwrite)
	if right != nil {
		// only a root split lets the tree grow in height
		t.root = t.makeInternal(t.root, right)
		tracer().Debugf("btree: root split, height is now %d", t.Height())
	}
	if added {
		t.count++
	}
	return added
}

// setNode inserts into the subtree rooted at n, which must be mutable. If n
// had to be split, the new right sibling is returned.
func (t *Tree[K, V]) setNode(n treeNode[K, V], key K, value V, overwrite bool) (added bool, right treeNode[K, V]) {
	switch n := n.(type) {
	case *leafNode[K, V]:
		return t.setLeaf(n, key, value, overwrite)
	case *innerNode[K, V]:
		return t.setInner(n, key, value, overwrite)
	default:
		panic("unknown tree node type")
	}
}

func (t *Tree[K, V]) setLeaf(leaf *leafNode[K, V], key K, value V, overwrite bool) (bool, treeNode[K, V]) {
	i, found := leaf.indexOf(key, t.cmp)
	if found {
		if overwrite {
			leaf.keys[i] = key
			if leaf.values != nil {
				leaf.values[i] = value
			}
		}
		return false, nil
	}
	if len(leaf.keys) < t.maxNodeSize {
		t.insertInLeaf(leaf, i, key, value)
		return true, nil
	}
	right := t.splitOffRightSide(leaf).(*leafNode[K, V])
	target := leaf
	if i > len(leaf.keys) {
		i -= len(leaf.keys)
		target = right
	}
	t.insertInLeaf(target, i, key, value)
	return true, right
}

func (t *Tree[K, V]) setInner(inner *innerNode[K, V], key K, value V, overwrite bool) (bool, treeNode[K, V]) {
	limit := t.maxNodeSize
	i, _ := inner.indexOf(key, t.cmp)
	i = min(i, len(inner.children)-1)
	child := t.mutableChild(inner, i)
	if ch := child.header(); ch.size() >= limit {
		// The child is full and inserting would split it. Shifting one entry
		// to a sibling with room avoids the split, as long as key still
		// belongs to child afterwards. For inner nodes keys[j] is the max of
		// grandchild j, thus key must not fall into the range of the
		// grandchild moved.
		if i > 0 && inner.children[i-1].header().size() < limit && t.compare(ch.keys[0], key) < 0 {
			left := t.mutableChild(inner, i-1)
			t.takeFromRight(left, child)
			inner.keys[i-1] = left.header().maxKey()
		} else if i+1 < len(inner.children) && inner.children[i+1].header().size() < limit &&
			t.compare(ch.keys[len(ch.keys)-2], key) > 0 {
			right := t.mutableChild(inner, i+1)
			t.takeFromLeft(right, child)
			inner.keys[i] = ch.maxKey()
		}
	}
	added, split := t.setNode(child, key, value, overwrite)
	inner.keys[i] = child.header().maxKey()
	if !added {
		return false, nil
	}
	if split == nil {
		return true, nil
	}
	if len(inner.keys) < limit {
		t.insertChild(inner, i+1, split)
		return true, nil
	}
	right := t.splitOffRightSide(inner).(*innerNode[K, V])
	target := inner
	if t.compare(split.header().maxKey(), inner.maxKey()) > 0 {
		i -= len(inner.keys)
		target = right
	}
	t.insertChild(target, i+1, split)
	return true, right
}

// Clone returns a copy of the tree in O(1). Both trees share their nodes
// until one of them writes to a node, which then gets copied.
//
// Clone leaves the frozen state behind: the clone is always mutable.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t.editing {
		// the nodes on the edit path are written in place and may be
		// underfull right now; hand out a freshly built tree instead
		t.illegalEdit = true
		tracer().Errorf("btree: tree cloned from inside a range edit")
		return t.rebuilt()
	}
	t.root.header().shared = true
	c := *t
	c.frozen = false
	return &c
}

// rebuilt returns a new tree holding the pairs currently found in the
// leaves of t, regardless of the state of the inner nodes.
func (t *Tree[K, V]) rebuilt() *Tree[K, V] {
	c := *t
	c.root, c.count = c.newLeaf(), 0
	c.frozen, c.editing, c.illegalEdit = false, false, false
	t.walkLeaves(t.root, func(leaf *leafNode[K, V]) {
		for i, key := range leaf.keys {
			c.set(key, leaf.value(i), true)
		}
	})
	return &c
}

// GreedyClone returns a copy of the tree which duplicates every node not
// marked as shared. With force set, shared nodes are duplicated as well and
// the copy has no structure in common with the receiver.
//
// Like Clone, GreedyClone called from inside an EditRange callback returns a
// freshly built tree and makes the edit fail.
func (t *Tree[K, V]) GreedyClone(force bool) *Tree[K, V] {
	if t.editing {
		t.illegalEdit = true
		tracer().Errorf("btree: tree cloned from inside a range edit")
		return t.rebuilt()
	}
	c := *t
	c.root = t.greedyClone(t.root, force)
	c.frozen, c.editing, c.illegalEdit = false, false, false
	return &c
}

// With returns a copy of the tree with key set to value. The receiver is
// left unchanged.
func (t *Tree[K, V]) With(key K, value V) *Tree[K, V] {
	c := t.Clone()
	c.set(key, value, true)
	return c
}

// Without returns a copy of the tree without key. The receiver is left
// unchanged.
func (t *Tree[K, V]) Without(key K) *Tree[K, V] {
	c := t.Clone()
	_, _ = c.Delete(key)
	return c
}

// Clear removes all keys.
func (t *Tree[K, V]) Clear() error {
	if err := t.checkMutable(); err != nil {
		return err
	}
	t.root = t.newLeaf()
	t.count = 0
	return nil
}

// Freeze makes the tree read-only. Mutating operations on a frozen tree
// return ErrFrozen.
func (t *Tree[K, V]) Freeze() {
	t.frozen = true
	tracer().Debugf("btree: tree of %d keys frozen", t.count)
}

// Unfreeze makes a frozen tree mutable again.
func (t *Tree[K, V]) Unfreeze() {
	t.frozen = false
}

// IsFrozen reports whether the tree is frozen.
func (t *Tree[K, V]) IsFrozen() bool {
	return t.frozen
}
