/*
Package avl implements a height-balanced binary search tree (AVL tree).

For every node the heights of its two subtrees differ by at most one. Insert
and Remove restore this property on their way back up from the modified leaf,
using single or double rotations. Search, Insert and Remove run in O(log n).

A tree created by

	avl.New[int]()

is empty and ready to use. Keys are unique; inserting a key already present
and removing an absent key are no-ops.

Trees are not safe for concurrent mutation; callers must serialize access.

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package avl

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
