package avl

import (
	"fmt"

	"github.com/npillmayer/ordtrees/treeviz"
	"golang.org/x/exp/constraints"
)

// Snapshot returns a copy of the tree's shape for rendering with package
// treeviz. Notes carry the cached height and the balance factor of each node.
// An empty tree yields nil.
func (t *Tree[K]) Snapshot() *treeviz.Node {
	return snapshot(t.root)
}

func snapshot[K constraints.Ordered](n *node[K]) *treeviz.Node {
	if n == nil {
		return nil
	}
	return &treeviz.Node{
		Label: fmt.Sprint(n.key),
		Note:  fmt.Sprintf("h=%d bf=%d", n.height, balance(n)),
		Left:  snapshot(n.left),
		Right: snapshot(n.right),
	}
}
