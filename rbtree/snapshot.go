package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordtrees/treeviz"
)

// Snapshot returns a copy of the tree's shape for rendering with package
// treeviz. Nodes carry their color. An empty tree yields nil.
func (t *Tree[K]) Snapshot() *treeviz.Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.snapshot(t.root)
}

func (t *Tree[K]) snapshot(x ref) *treeviz.Node {
	if x == nilRef {
		return nil
	}
	n := &t.nodes[x]
	c := treeviz.Black
	if n.color == red {
		c = treeviz.Red
	}
	return &treeviz.Node{
		Label: fmt.Sprint(n.key),
		Color: c,
		Left:  t.snapshot(n.left),
		Right: t.snapshot(n.right),
	}
}
