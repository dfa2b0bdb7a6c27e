/*
Package splay provides an ordered map implemented as a randomized top-down
splay tree.

Every update splays the tree on the key involved, moving the key to the root.
Lookups splay only with a configurable probability p and otherwise do a plain
binary search. With p = 1 the tree behaves like a classic splay tree with
amortized O(log n) cost per operation, restructuring on every access. Smaller
values of p give up a constant factor of the amortized bound for fewer
restructurings on read-heavy workloads.

Nodes carry no balance information. Trees are not safe for concurrent use;
note that even Get may restructure the tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package splay

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sorted'.
func tracer() tracing.Trace {
	return tracing.Select("sorted")
}
