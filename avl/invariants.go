package avl

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
	"golang.org/x/exp/constraints"
)

// IsBalanced reports whether every node's subtrees differ in height by at
// most one. Heights are recomputed, not taken from the node cache.
func (t *Tree[K]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

func balancedHeight[K constraints.Ordered](n *node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balancedHeight(n.left)
	rh, rok := balancedHeight(n.right)
	if !lok || !rok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// Check validates structural tree invariants: key ordering, cached heights,
// balance and size.
//
// This checker is intentionally strict and should be used in tests after
// every mutation.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ordtrees.ErrCorrupted)
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ordtrees.ErrCorrupted, count, t.size)
	}
	return nil
}

// checkNode verifies the subtree at n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded).
func (t *Tree[K]) checkNode(n *node[K], lo, hi *K) (count int, h int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, 0, fmt.Errorf("%w: key %v out of order", ordtrees.ErrCorrupted, n.key)
	}
	lc, lh, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	h = 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: cached height of %v is %d, should be %d",
			ordtrees.ErrCorrupted, n.key, n.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ordtrees.ErrCorrupted, n.key, bf)
	}
	return lc + rc + 1, h, nil
}
