package btree

// NodeInfo describes a tree node to a WalkNodes visitor.
type NodeInfo[K any] struct {
	Depth  int  // distance from the root
	Leaf   bool // leaves hold pairs, inner nodes hold cached child max keys
	Shared bool // node is marked shared between trees
	Keys   []K  // must not be modified
}

// WalkNodes calls fn for every node in depth-first pre-order. Returning
// false from fn skips the children of the node.
func (t *Tree[K, V]) WalkNodes(fn func(NodeInfo[K]) bool) {
	t.walkNodes(t.root, 0, fn)
}

func (t *Tree[K, V]) walkNodes(n treeNode[K, V], depth int, fn func(NodeInfo[K]) bool) {
	h := n.header()
	info := NodeInfo[K]{Depth: depth, Leaf: n.isLeaf(), Shared: h.shared, Keys: h.keys}
	if !fn(info) {
		return
	}
	if inner, ok := n.(*innerNode[K, V]); ok {
		for _, child := range inner.children {
			t.walkNodes(child, depth+1, fn)
		}
	}
}
