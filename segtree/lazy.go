package segtree

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// push settles the pending delta of node: its aggregate takes the delta for
// every element of [start,end], and the children inherit it.
func (t *Tree[T]) push(node, start, end int) {
	if t.lazy == nil || t.lazy[node] == 0 {
		return
	}
	d := t.lazy[node]
	t.tree[node] += d * T(end-start+1)
	if start != end {
		t.lazy[2*node] += d
		t.lazy[2*node+1] += d
	}
	t.lazy[node] = 0
}

// UpdateRange adds delta to every value at indices left through right, both
// inclusive. Only sum trees support range updates; other trees return
// ErrUnsupportedOperation.
func (t *Tree[T]) UpdateRange(left, right int, delta T) error {
	if t.op != Sum {
		return fmt.Errorf("%w: range update on a %v tree", ordtrees.ErrUnsupportedOperation, t.op)
	}
	if err := t.checkRange(left, right); err != nil {
		return err
	}
	tracer().Debugf("segtree: add %v to [%d,%d]", delta, left, right)
	t.updateRange(1, 0, t.n-1, left, right, delta)
	return nil
}

func (t *Tree[T]) updateRange(node, start, end, left, right int, delta T) {
	t.push(node, start, end)
	if right < start || end < left {
		return
	}
	if left <= start && end <= right {
		t.tree[node] += delta * T(end-start+1)
		if start != end {
			t.lazy[2*node] += delta
			t.lazy[2*node+1] += delta
		}
		return
	}
	mid := (start + end) / 2
	t.updateRange(2*node, start, mid, left, right, delta)
	t.updateRange(2*node+1, mid+1, end, left, right, delta)
	t.tree[node] = t.tree[2*node] + t.tree[2*node+1]
}

// QueryRange returns the sum of the values at indices left through right,
// both inclusive, taking range updates into account. It is the companion of
// UpdateRange and restricted to sum trees likewise. For sum trees it yields
// the same result as Query.
func (t *Tree[T]) QueryRange(left, right int) (T, error) {
	if t.op != Sum {
		return t.zero, fmt.Errorf("%w: range query on a %v tree", ordtrees.ErrUnsupportedOperation, t.op)
	}
	return t.Query(left, right)
}
