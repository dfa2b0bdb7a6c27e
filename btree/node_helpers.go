package btree

import "slices"

func (t *Tree[K, V]) newLeaf() *leafNode[K, V] {
	return &leafNode[K, V]{}
}

// makeInternal creates an inner node over children, caching their max keys.
func (t *Tree[K, V]) makeInternal(children ...treeNode[K, V]) *innerNode[K, V] {
	inner := &innerNode[K, V]{children: children}
	inner.keys = make([]K, len(children), max(len(children), t.maxNodeSize))
	for i, child := range children {
		inner.keys[i] = child.header().maxKey()
	}
	return inner
}

// cloneNode clones a node for copy-on-write updates. The clone itself is not
// shared.
func (t *Tree[K, V]) cloneNode(n treeNode[K, V]) treeNode[K, V] {
	switch n := n.(type) {
	case *leafNode[K, V]:
		return t.cloneLeaf(n)
	case *innerNode[K, V]:
		return t.cloneInner(n)
	default:
		panic("unknown tree node type")
	}
}

func (t *Tree[K, V]) cloneLeaf(leaf *leafNode[K, V]) *leafNode[K, V] {
	c := &leafNode[K, V]{}
	c.keys = slices.Clone(leaf.keys)
	if leaf.values != nil {
		c.values = slices.Clone(leaf.values)
	}
	return c
}

// cloneInner copies an inner node. The children are now referenced by the
// original node and by the clone, so they get marked as shared.
func (t *Tree[K, V]) cloneInner(inner *innerNode[K, V]) *innerNode[K, V] {
	c := &innerNode[K, V]{children: slices.Clone(inner.children)}
	c.keys = slices.Clone(inner.keys)
	for _, child := range c.children {
		child.header().shared = true
	}
	return c
}

// greedyClone duplicates every node of the subtree which is not shared, or
// every node if force is set. Shared subtrees are handed back as is.
func (t *Tree[K, V]) greedyClone(n treeNode[K, V], force bool) treeNode[K, V] {
	if n.header().shared && !force {
		return n
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		return t.cloneLeaf(n)
	case *innerNode[K, V]:
		c := &innerNode[K, V]{children: make([]treeNode[K, V], len(n.children))}
		c.keys = slices.Clone(n.keys)
		for i, child := range n.children {
			c.children[i] = t.greedyClone(child, force)
		}
		return c
	default:
		panic("unknown tree node type")
	}
}

// mutableChild returns child i of inner, cloning it first if it is shared.
// inner itself must not be shared.
func (t *Tree[K, V]) mutableChild(inner *innerNode[K, V], i int) treeNode[K, V] {
	child := inner.children[i]
	if child.header().shared {
		child = t.cloneNode(child)
		inner.children[i] = child
	}
	return child
}

func (t *Tree[K, V]) insertInLeaf(leaf *leafNode[K, V], i int, key K, value V) {
	leaf.keys = slices.Insert(leaf.keys, i, key)
	if !t.unitValues {
		leaf.values = slices.Insert(leaf.values, i, value)
	}
}

func (t *Tree[K, V]) removeFromLeaf(leaf *leafNode[K, V], i int) {
	leaf.keys = slices.Delete(leaf.keys, i, i+1)
	if leaf.values != nil {
		leaf.values = slices.Delete(leaf.values, i, i+1)
	}
}

func (t *Tree[K, V]) insertChild(inner *innerNode[K, V], i int, child treeNode[K, V]) {
	inner.children = slices.Insert(inner.children, i, child)
	inner.keys = slices.Insert(inner.keys, i, child.header().maxKey())
}

func (t *Tree[K, V]) removeChild(inner *innerNode[K, V], i int) {
	inner.children = slices.Delete(inner.children, i, i+1)
	inner.keys = slices.Delete(inner.keys, i, i+1)
}

// splitOffRightSide moves the upper half of a node into a new right sibling.
func (t *Tree[K, V]) splitOffRightSide(n treeNode[K, V]) treeNode[K, V] {
	h := n.header()
	half := len(h.keys) >> 1
	switch n := n.(type) {
	case *leafNode[K, V]:
		right := &leafNode[K, V]{}
		right.keys = cutTail(&n.keys, half)
		if n.values != nil {
			right.values = cutTail(&n.values, half)
		}
		return right
	case *innerNode[K, V]:
		right := &innerNode[K, V]{}
		right.keys = cutTail(&n.keys, half)
		right.children = cutTail(&n.children, half)
		return right
	default:
		panic("unknown tree node type")
	}
}

// cutTail truncates *s to length at and returns a copy of the cut-off tail.
func cutTail[T any](s *[]T, at int) []T {
	tail := slices.Clone((*s)[at:])
	clear((*s)[at:])
	*s = (*s)[:at]
	return tail
}

// takeFromRight moves the first entry of rhs to the end of lhs. Both nodes
// must be of the same kind and both must be mutable. The caller has to
// update the cached key for lhs.
func (t *Tree[K, V]) takeFromRight(lhs, rhs treeNode[K, V]) {
	switch l := lhs.(type) {
	case *leafNode[K, V]:
		r := rhs.(*leafNode[K, V])
		l.keys = append(l.keys, r.keys[0])
		if r.values != nil {
			l.values = append(l.values, r.values[0])
		}
		t.removeFromLeaf(r, 0)
	case *innerNode[K, V]:
		r := rhs.(*innerNode[K, V])
		l.keys = append(l.keys, r.keys[0])
		l.children = append(l.children, r.children[0])
		t.removeChild(r, 0)
	}
}

// takeFromLeft moves the last entry of lhs to the front of rhs. Both nodes
// must be of the same kind and both must be mutable.
func (t *Tree[K, V]) takeFromLeft(rhs, lhs treeNode[K, V]) {
	switch r := rhs.(type) {
	case *leafNode[K, V]:
		l := lhs.(*leafNode[K, V])
		last := len(l.keys) - 1
		r.keys = slices.Insert(r.keys, 0, l.keys[last])
		if l.values != nil {
			r.values = slices.Insert(r.values, 0, l.values[last])
		}
		t.removeFromLeaf(l, last)
	case *innerNode[K, V]:
		l := lhs.(*innerNode[K, V])
		last := len(l.keys) - 1
		r.keys = slices.Insert(r.keys, 0, l.keys[last])
		r.children = slices.Insert(r.children, 0, l.children[last])
		t.removeChild(l, last)
	}
}

// mergeSibling appends all entries of rhs to lhs. lhs must be mutable, rhs
// is only read.
func (t *Tree[K, V]) mergeSibling(lhs, rhs treeNode[K, V]) {
	switch l := lhs.(type) {
	case *leafNode[K, V]:
		r := rhs.(*leafNode[K, V])
		l.keys = append(l.keys, r.keys...)
		if r.values != nil {
			l.values = append(l.values, r.values...)
		}
	case *innerNode[K, V]:
		r := rhs.(*innerNode[K, V])
		oldLen := len(l.keys)
		l.keys = append(l.keys, r.keys...)
		l.children = append(l.children, r.children...)
		if r.shared && !l.shared {
			// children of a shared node are implicitly shared; with a new
			// unshared parent they have to carry the mark themselves.
			for _, child := range r.children {
				child.header().shared = true
			}
		}
		// after a mass delete the children at the seam may be underfull, too.
		t.tryMerge(l, oldLen-1)
	}
}

// tryMerge merges children i and i+1 of inner if they fit into one node.
func (t *Tree[K, V]) tryMerge(inner *innerNode[K, V], i int) bool {
	if i < 0 || i+1 >= len(inner.children) {
		return false
	}
	if inner.children[i].header().size()+inner.children[i+1].header().size() > t.maxNodeSize {
		return false
	}
	left := t.mutableChild(inner, i)
	t.mergeSibling(left, inner.children[i+1])
	t.removeChild(inner, i+1)
	inner.keys[i] = left.header().maxKey()
	return true
}
