package segtree

import (
	"fmt"
	"math"

	"github.com/npillmayer/ordtrees"
)

// Check validates that every inner node holds the aggregate of its children.
// A child's pending delta counts towards the aggregate of its parent, a
// node's own pending delta does not. Floating point sums are compared
// with a small relative tolerance.
//
// Check does not modify the tree.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ordtrees.ErrCorrupted)
	}
	if t.n == 0 {
		if len(t.tree) != 0 {
			return fmt.Errorf("%w: empty tree holds nodes", ordtrees.ErrCorrupted)
		}
		return nil
	}
	if len(t.tree) != 4*t.n {
		return fmt.Errorf("%w: node array has size %d, expected %d", ordtrees.ErrCorrupted, len(t.tree), 4*t.n)
	}
	if (t.op == Sum) != (t.lazy != nil) {
		return fmt.Errorf("%w: lazy array present for %v tree", ordtrees.ErrCorrupted, t.op)
	}
	_, err := t.checkNode(1, 0, t.n-1)
	return err
}

// checkNode returns the aggregate of node including its own pending delta.
func (t *Tree[T]) checkNode(node, start, end int) (T, error) {
	agg := t.tree[node]
	if t.lazy != nil {
		agg += t.lazy[node] * T(end-start+1)
	}
	if start == end {
		return agg, nil
	}
	mid := (start + end) / 2
	l, err := t.checkNode(2*node, start, mid)
	if err != nil {
		return agg, err
	}
	r, err := t.checkNode(2*node+1, mid+1, end)
	if err != nil {
		return agg, err
	}
	if want := t.monoid.Add(l, r); !t.same(t.tree[node], want) {
		return agg, fmt.Errorf("%w: node %d for [%d,%d] holds %v, children combine to %v",
			ordtrees.ErrCorrupted, node, start, end, t.tree[node], want)
	}
	return agg, nil
}

func (t *Tree[T]) same(a, b T) bool {
	if a == b {
		return true
	}
	if !ordtrees.IsFloat[T]() {
		return false
	}
	x, y := float64(a), float64(b)
	return math.Abs(x-y) <= 1e-9*max(1, math.Abs(x), math.Abs(y))
}
