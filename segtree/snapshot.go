package segtree

import (
	"fmt"

	"github.com/npillmayer/ordtrees/treeviz"
)

// Snapshot returns a copy of the tree's shape for rendering with package
// treeviz. Labels carry stored aggregates, notes the index range of a node
// and its pending delta, if any. An empty tree yields nil.
func (t *Tree[T]) Snapshot() *treeviz.Node {
	if t.n == 0 {
		return nil
	}
	return t.snapshot(1, 0, t.n-1)
}

func (t *Tree[T]) snapshot(node, start, end int) *treeviz.Node {
	n := &treeviz.Node{
		Label: fmt.Sprint(t.tree[node]),
		Note:  fmt.Sprintf("[%d,%d]", start, end),
	}
	if t.lazy != nil && t.lazy[node] != 0 {
		n.Note += fmt.Sprintf(" +%v", t.lazy[node])
	}
	if start != end {
		mid := (start + end) / 2
		n.Left = t.snapshot(2*node, start, mid)
		n.Right = t.snapshot(2*node+1, mid+1, end)
	}
	return n
}
