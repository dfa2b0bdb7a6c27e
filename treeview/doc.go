/*
Package treeview renders the node structure of the ordered trees of this
module to a console, for debugging purposes.

Trees are printed as an indented outline, one node per line. B+ tree nodes
list their keys (leaves) or cached child max keys (inner nodes); nodes shared
between trees are highlighted. Key lists too wide for the console get
truncated, measured in display cells of a fixed width font.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treeview

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sorted'.
func tracer() tracing.Trace {
	return tracing.Select("sorted")
}
