/*
Package treeviz renders snapshots of binary tree shapes for debugging.

Containers of package ordtrees hand out a *Node snapshot of their internal
structure. Snapshots are copies; rendering them never touches the container.
Three outputs are supported: Graphviz DOT (ToDot), colored console text
(Console) and HTML nested lists (WriteHTML).

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treeviz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}
