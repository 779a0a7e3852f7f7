package segtree

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// Tree is a segment tree over n values of type T.
type Tree[T ordtrees.Number] struct {
	op     Op
	monoid Monoid[T]
	zero   T   // cached monoid.Zero()
	n      int // size of the index domain
	tree   []T // aggregates, 1-based, 4n
	lazy   []T // pending per-element deltas; nil unless op is Sum
}

// New builds a tree over a copy of values, aggregating with op. An empty
// slice yields an empty tree on which every query fails.
func New[T ordtrees.Number](values []T, op Op) (*Tree[T], error) {
	m, err := MonoidFor[T](op)
	if err != nil {
		return nil, err
	}
	t := &Tree[T]{
		op:     op,
		monoid: m,
		zero:   m.Zero(),
		n:      len(values),
	}
	if t.n == 0 {
		return t, nil
	}
	t.tree = make([]T, 4*t.n)
	if op == Sum {
		t.lazy = make([]T, 4*t.n)
	}
	t.build(values, 1, 0, t.n-1)
	return t, nil
}

func (t *Tree[T]) build(values []T, node, start, end int) {
	if start == end {
		t.tree[node] = t.leaf(values[start])
		return
	}
	mid := (start + end) / 2
	t.build(values, 2*node, start, mid)
	t.build(values, 2*node+1, mid+1, end)
	t.tree[node] = t.monoid.Add(t.tree[2*node], t.tree[2*node+1])
}

// leaf is the aggregate stored for a single value: Add(Zero(), v). It is v
// itself for all operations except GCD, which stores |v|.
func (t *Tree[T]) leaf(v T) T {
	return t.monoid.Add(t.zero, v)
}

// Len returns the size of the index domain.
func (t *Tree[T]) Len() int {
	return t.n
}

// Op returns the aggregation the tree has been built with.
func (t *Tree[T]) Op() Op {
	return t.op
}

// checkRange validates 0 ≤ left ≤ right < n.
func (t *Tree[T]) checkRange(left, right int) error {
	if left > right {
		tracer().Debugf("segtree: rejecting reversed range [%d,%d]", left, right)
		return fmt.Errorf("%w: range [%d,%d] is reversed", ordtrees.ErrInvalidArgument, left, right)
	}
	if left < 0 || right >= t.n {
		tracer().Debugf("segtree: rejecting range [%d,%d] for size %d", left, right, t.n)
		return fmt.Errorf("%w: %w: range [%d,%d] exceeds [0,%d)", ordtrees.ErrInvalidArgument,
			ordtrees.ErrIndexOutOfBounds, left, right, t.n)
	}
	return nil
}

// Update sets the value at index.
func (t *Tree[T]) Update(index int, value T) error {
	if err := t.checkRange(index, index); err != nil {
		return err
	}
	t.update(1, 0, t.n-1, index, value)
	return nil
}

func (t *Tree[T]) update(node, start, end, index int, value T) {
	t.push(node, start, end)
	if index < start || index > end {
		return
	}
	if start == end {
		t.tree[node] = t.leaf(value)
		return
	}
	mid := (start + end) / 2
	t.update(2*node, start, mid, index, value)
	t.update(2*node+1, mid+1, end, index, value)
	t.tree[node] = t.monoid.Add(t.tree[2*node], t.tree[2*node+1])
}

// Query returns the aggregate of the values at indices left through right,
// both inclusive.
func (t *Tree[T]) Query(left, right int) (T, error) {
	if err := t.checkRange(left, right); err != nil {
		return t.zero, err
	}
	return t.query(1, 0, t.n-1, left, right), nil
}

func (t *Tree[T]) query(node, start, end, left, right int) T {
	t.push(node, start, end)
	if right < start || end < left { // no overlap
		return t.zero
	}
	if left <= start && end <= right { // total overlap
		return t.tree[node]
	}
	mid := (start + end) / 2
	return t.monoid.Add(
		t.query(2*node, start, mid, left, right),
		t.query(2*node+1, mid+1, end, left, right),
	)
}

// Values returns a copy of the current values, with all pending range
// updates applied. GCD trees return absolute values.
func (t *Tree[T]) Values() []T {
	values := make([]T, t.n)
	if t.n > 0 {
		t.collect(values, 1, 0, t.n-1, 0)
	}
	return values
}

// collect writes the leaves below node to values. pending is the sum of
// deltas still held lazily by the ancestors of node.
func (t *Tree[T]) collect(values []T, node, start, end int, pending T) {
	if t.lazy != nil {
		pending += t.lazy[node]
	}
	if start == end {
		values[start] = t.tree[node] + pending
		return
	}
	mid := (start + end) / 2
	t.collect(values, 2*node, start, mid, pending)
	t.collect(values, 2*node+1, mid+1, end, pending)
}
