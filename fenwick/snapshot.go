package fenwick

import (
	"fmt"

	"github.com/npillmayer/ordtrees/treeviz"
)

// Snapshot returns the tree as a binary search tree over positions, for
// rendering with package treeviz. Position i with lowbit(i) = 2k has the
// children i − k and i + k; positions beyond Len() are replaced by their
// left child. Labels carry the partial sums held at a position, notes the
// range they cover. An empty tree yields nil.
func (t *Tree[T]) Snapshot() *treeviz.Node {
	return t.snapshot(topBit(t.n))
}

func (t *Tree[T]) snapshot(i int) *treeviz.Node {
	for i > t.n {
		if lowbit(i) == 1 {
			return nil
		}
		i -= lowbit(i) / 2
	}
	if i < 1 {
		return nil
	}
	n := &treeviz.Node{
		Label: fmt.Sprint(t.tree[i]),
		Note:  fmt.Sprintf("(%d,%d]", i-lowbit(i), i),
	}
	if half := lowbit(i) / 2; half > 0 {
		n.Left = t.snapshot(i - half)
		n.Right = t.snapshot(i + half)
	}
	return n
}
