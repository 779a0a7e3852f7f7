/*
Package segtree implements a segment tree over a fixed-size array of numbers.

A segment tree is a complete binary tree where every node holds the
aggregate of a contiguous range of the array. Aggregation is given by a
monoid: an associative operation together with its neutral element. The
supported operations are sum, min, max and gcd. Point updates and range
queries run in O(log n).

Sum trees additionally support range updates: adding a delta to every
element of a range. Pending deltas are stored lazily at the highest nodes
covering the range and pushed down to the children once a node is visited
again. Lazy deltas are invisible to clients; all query methods return the
same results as if every update had been applied element by element.

Nodes are stored in a 1-based array of size 4n, children of node i live at
2i and 2i+1. The range covered by a node is not stored but computed while
descending from the root.

Trees are not safe for concurrent use, not even for queries, as queries may
push down pending deltas.

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}
