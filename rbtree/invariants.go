package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// BlackHeight returns the number of black nodes on every path from the root
// down to a leaf, not counting the root itself but counting the (black) nil
// leaf. It returns -1 if the tree violates a red-black rule: a red root, a
// red node with a red child, or paths with differing black counts.
// An empty tree has black-height 0.
func (t *Tree[K]) BlackHeight() int {
	if len(t.nodes) == 0 || t.root == nilRef {
		return 0
	}
	if t.colorOf(t.root) != black {
		return -1
	}
	bh := t.blackCount(t.root)
	if bh < 0 {
		return -1
	}
	return bh - 1
}

// blackCount returns the black nodes on each path from x down to a leaf,
// counting x and the leaf, or -1 on a violation below x.
func (t *Tree[K]) blackCount(x ref) int {
	if x == nilRef {
		return 1
	}
	n := &t.nodes[x]
	if n.color == red && (t.colorOf(n.left) == red || t.colorOf(n.right) == red) {
		return -1
	}
	lc, rc := t.blackCount(n.left), t.blackCount(n.right)
	if lc < 0 || rc < 0 || lc != rc {
		return -1
	}
	if n.color == black {
		return lc + 1
	}
	return lc
}

// IsValidRedBlackTree reports whether the coloring rules hold.
func (t *Tree[K]) IsValidRedBlackTree() bool {
	return t.BlackHeight() >= 0
}

// Check validates all structural invariants: sentinel state, key ordering,
// parent links, coloring rules and size.
//
// This checker is intentionally strict and should be used in tests after
// every mutation.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ordtrees.ErrCorrupted)
	}
	if len(t.nodes) == 0 {
		if t.root != nilRef || t.size != 0 {
			return fmt.Errorf("%w: tree without arena is not empty", ordtrees.ErrCorrupted)
		}
		return nil
	}
	if s := t.nodes[nilRef]; s.color != black || s.parent != nilRef {
		return fmt.Errorf("%w: sentinel is not a black orphan", ordtrees.ErrCorrupted)
	}
	if t.root != nilRef && t.parent(t.root) != nilRef {
		return fmt.Errorf("%w: root has a parent", ordtrees.ErrCorrupted)
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ordtrees.ErrCorrupted, count, t.size)
	}
	if t.BlackHeight() < 0 {
		return fmt.Errorf("%w: coloring rules violated", ordtrees.ErrCorrupted)
	}
	return nil
}

func (t *Tree[K]) checkNode(x ref, lo, hi *K) (int, error) {
	if x == nilRef {
		return 0, nil
	}
	if int(x) >= len(t.nodes) {
		return 0, fmt.Errorf("%w: node index %d out of arena", ordtrees.ErrCorrupted, x)
	}
	n := &t.nodes[x]
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, fmt.Errorf("%w: key %v out of order", ordtrees.ErrCorrupted, n.key)
	}
	for _, c := range [2]ref{n.left, n.right} {
		if c != nilRef && int(c) < len(t.nodes) && t.nodes[c].parent != x {
			return 0, fmt.Errorf("%w: child of %v has a wrong parent link", ordtrees.ErrCorrupted, n.key)
		}
	}
	lc, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rc, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return lc + rc + 1, nil
}
