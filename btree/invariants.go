package btree

import "fmt"

// Check validates structural tree invariants: node occupancy, uniform leaf
// depth, cached max keys, strict key order and the key count.
//
// Check walks the complete tree and is meant for tests.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if inner, ok := t.root.(*innerNode[K, V]); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: inner root with %d children", ErrCorrupted, len(inner.children))
	}
	c := checker[K, V]{t: t}
	height, err := c.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.Height() {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorrupted, height, t.Height())
	}
	if c.count != t.count {
		return fmt.Errorf("%w: tree counts %d keys, leaves hold %d", ErrCorrupted, t.count, c.count)
	}
	return nil
}

type checker[K, V any] struct {
	t       *Tree[K, V]
	count   int
	prev    K
	hasPrev bool
}

// checkNode returns the number of inner levels below and including n.
func (c *checker[K, V]) checkNode(n treeNode[K, V], isRoot bool) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrCorrupted)
	}
	h := n.header()
	if h.size() > c.t.maxNodeSize {
		return 0, fmt.Errorf("%w: node holds %d entries, max is %d", ErrCorrupted, h.size(), c.t.maxNodeSize)
	}
	if !isRoot && h.size() == 0 {
		return 0, fmt.Errorf("%w: empty non-root node", ErrCorrupted)
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		if n.values != nil && len(n.values) != len(n.keys) {
			return 0, fmt.Errorf("%w: leaf with %d keys and %d values", ErrCorrupted, len(n.keys), len(n.values))
		}
		if c.t.unitValues != (n.values == nil) && len(n.keys) > 0 {
			return 0, fmt.Errorf("%w: value storage does not match value type", ErrCorrupted)
		}
		for _, key := range n.keys {
			if c.hasPrev && c.t.compare(c.prev, key) >= 0 {
				return 0, fmt.Errorf("%w: keys out of order at %v", ErrCorrupted, key)
			}
			c.prev, c.hasPrev = key, true
		}
		c.count += len(n.keys)
		return 0, nil
	case *innerNode[K, V]:
		if len(n.keys) != len(n.children) {
			return 0, fmt.Errorf("%w: inner node with %d keys and %d children", ErrCorrupted, len(n.keys), len(n.children))
		}
		height := -1
		for i, child := range n.children {
			ch, err := c.checkNode(child, false)
			if err != nil {
				return 0, err
			}
			if height >= 0 && ch != height {
				return 0, fmt.Errorf("%w: non-uniform subtree heights", ErrCorrupted)
			}
			height = ch
			if c.t.compare(n.keys[i], child.header().maxKey()) != 0 {
				return 0, fmt.Errorf("%w: stale cached key %v for child %d", ErrCorrupted, n.keys[i], i)
			}
		}
		return height + 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown node type %T", ErrCorrupted, n)
	}
}
