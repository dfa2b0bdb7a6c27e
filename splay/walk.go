package splay

// Side tells which child of its parent a node is.
type Side int8

const (
	Root Side = iota
	Left
	Right
)

// NodeInfo describes a tree node to a WalkNodes visitor.
type NodeInfo[K any] struct {
	Depth int
	Side  Side
	Key   K
}

// WalkNodes calls fn for every node in depth-first pre-order, left before
// right. Returning false from fn skips the subtrees of the node.
func (t *Tree[K, V]) WalkNodes(fn func(NodeInfo[K]) bool) {
	type item struct {
		n     *node[K, V]
		depth int
		side  Side
	}
	if t.root == nil {
		return
	}
	stack := []item{{t.root, 0, Root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(NodeInfo[K]{Depth: it.depth, Side: it.side, Key: it.n.key}) {
			continue
		}
		if it.n.right != nil {
			stack = append(stack, item{it.n.right, it.depth + 1, Right})
		}
		if it.n.left != nil {
			stack = append(stack, item{it.n.left, it.depth + 1, Left})
		}
	}
}

// Depth returns the length of the longest path from the root to a leaf,
// counted in nodes. An empty tree has depth 0.
func (t *Tree[K, V]) Depth() int {
	depth := 0
	t.WalkNodes(func(info NodeInfo[K]) bool {
		depth = max(depth, info.Depth+1)
		return true
	})
	return depth
}
