/*
Package rbtree implements a red-black tree over an arena of nodes.

Every node is either red or black, the root is black, a red node has only
black children, and all paths from a node down to its leaves contain the same
number of black nodes. These rules keep the height below 2·log2(n+1).

Nodes live in a single slice and refer to each other by index. Index 0 is the
black nil sentinel which stands in for every leaf; parent links are plain
indices as well, so walking up during fix-up is O(1) without creating
ownership cycles. Slots of removed nodes are kept on a free list and reused
by later insertions.

Trees are not safe for concurrent mutation; callers must serialize access.

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
