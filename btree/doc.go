/*
Package btree provides an in-memory B+ tree, ordered by a pluggable
comparator, with cheap copy-on-write clones.

Leaves hold keys and values in parallel slices, inner nodes hold children
together with a cached copy of each child's maximum key. All leaves are kept
at the same depth. Nodes hold at most MaxNodeSize keys (leaves) or children
(inner nodes); after deletions, siblings which together fit into one node
are merged.

Clone is O(1): it marks the root as shared and hands the same node
structure to the new tree. Every mutating operation copies a shared node
before it writes to it, marking the node's children as shared in the
process. That way a mutation through one tree never becomes visible through
another one.

Trees are not safe for concurrent use. Iterators hold direct references to
nodes and must not be used after the tree has been modified.

Keys for which the comparator returns order.Incomparable let operations
panic with an *order.KeyError.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sorted'.
func tracer() tracing.Trace {
	return tracing.Select("sorted")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
