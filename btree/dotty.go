package btree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[treeNode[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[treeNode[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(node treeNode[K, V]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the node structure of a tree in Graphviz DOT format
// (for debugging purposes). Leaves are drawn as boxes listing their keys,
// inner nodes as records of their cached max keys. Shared nodes are
// highlighted.
func (t *Tree[K, V]) WriteDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	var walk func(n treeNode[K, V], shared bool)
	walk = func(n treeNode[K, V], shared bool) {
		ID := ids.alloc(n)
		h := n.header()
		shared = shared || h.shared
		label := dotKeys(h.keys)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n.isLeaf(), shared))
		if inner, ok := n.(*innerNode[K, V]); ok {
			for _, child := range inner.children {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				walk(child, shared)
			}
		}
	}
	walk(t.root, false)
	b := &strings.Builder{}
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("btree DOT: %s", err.Error())
	}
	return err
}

func dotKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.ReplaceAll(fmt.Sprint(k), "\"", "\\\"")
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles(isleaf bool, shared bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=record"
	}
	if shared {
		s += ",fillcolor=\"#FFBB88\""
	} else if !isleaf {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
