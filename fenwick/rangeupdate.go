package fenwick

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// RangeAdder supports adding a delta to every value of a range and reading
// single values. It keeps the differences between neighbouring values in a
// Tree, so the value at a position is the prefix sum of differences up to it.
type RangeAdder[T ordtrees.Number] struct {
	diff *Tree[T]
}

// NewRangeAdder creates a RangeAdder over n zero values.
func NewRangeAdder[T ordtrees.Number](n int) (*RangeAdder[T], error) {
	diff, err := New[T](n)
	if err != nil {
		return nil, err
	}
	return &RangeAdder[T]{diff: diff}, nil
}

// FromSliceRangeAdder creates a RangeAdder holding values.
func FromSliceRangeAdder[T ordtrees.Number](values []T) *RangeAdder[T] {
	d := make([]T, len(values))
	var prev T
	for i, v := range values {
		d[i] = v - prev
		prev = v
	}
	return &RangeAdder[T]{diff: FromSlice(d)}
}

// Len returns the number of values.
func (ra *RangeAdder[T]) Len() int {
	return ra.diff.n
}

// Add adds delta to the values at positions left through right, both
// inclusive.
func (ra *RangeAdder[T]) Add(left, right int, delta T) error {
	if err := checkRange(left, right, ra.diff.n); err != nil {
		return err
	}
	ra.diff.add(left, delta)
	if right < ra.diff.n {
		ra.diff.add(right+1, -delta)
	}
	return nil
}

// Value returns the value at position index, 0 for positions outside 1…Len().
func (ra *RangeAdder[T]) Value(index int) T {
	if index < 1 || index > ra.diff.n {
		return 0
	}
	return ra.diff.PrefixSum(index)
}

func checkRange(left, right, n int) error {
	if left > right {
		return fmt.Errorf("%w: range [%d,%d] is reversed", ordtrees.ErrInvalidArgument, left, right)
	}
	if left < 1 {
		return outOfBounds(left, n)
	}
	if right > n {
		return outOfBounds(right, n)
	}
	return nil
}

// RangeTree supports adding a delta to every value of a range and
// querying range sums, both in O(log n).
//
// Adding x to [l, r] changes the prefix sum at i by x·(i − l + 1) for
// l ≤ i ≤ r and by x·(r − l + 1) for i > r. The first tree accumulates the
// coefficient of i, the second the constant part, such that
//
//	PrefixSum(i) = coef.PrefixSum(i)·i − offs.PrefixSum(i)
type RangeTree[T ordtrees.Number] struct {
	coef, offs *Tree[T]
}

// NewRangeTree creates a RangeTree over n zero values.
func NewRangeTree[T ordtrees.Number](n int) (*RangeTree[T], error) {
	coef, err := New[T](n)
	if err != nil {
		return nil, err
	}
	offs, _ := New[T](n)
	return &RangeTree[T]{coef: coef, offs: offs}, nil
}

// FromSliceRangeTree creates a RangeTree holding values.
func FromSliceRangeTree[T ordtrees.Number](values []T) *RangeTree[T] {
	rt, _ := NewRangeTree[T](len(values))
	for i, v := range values {
		rt.add(i+1, i+1, v)
	}
	return rt
}

// Len returns the number of values.
func (rt *RangeTree[T]) Len() int {
	return rt.coef.n
}

// Add adds delta to the values at positions left through right, both
// inclusive.
func (rt *RangeTree[T]) Add(left, right int, delta T) error {
	if err := checkRange(left, right, rt.coef.n); err != nil {
		return err
	}
	rt.add(left, right, delta)
	return nil
}

func (rt *RangeTree[T]) add(left, right int, delta T) {
	rt.coef.add(left, delta)
	rt.offs.add(left, delta*T(left-1))
	if right < rt.coef.n {
		rt.coef.add(right+1, -delta)
		rt.offs.add(right+1, -delta*T(right))
	}
}

// PrefixSum returns the sum of the values at positions 1 through index,
// clamping index like Tree.PrefixSum.
func (rt *RangeTree[T]) PrefixSum(index int) T {
	i := min(index, rt.coef.n)
	if i <= 0 {
		return 0
	}
	return rt.coef.PrefixSum(i)*T(i) - rt.offs.PrefixSum(i)
}

// RangeSum returns the sum of the values at positions left through right,
// both inclusive. It is 0 if left > right.
func (rt *RangeTree[T]) RangeSum(left, right int) T {
	if left > right {
		return 0
	}
	return rt.PrefixSum(right) - rt.PrefixSum(left-1)
}

// Value returns the value at position index, 0 for positions outside 1…Len().
func (rt *RangeTree[T]) Value(index int) T {
	return rt.RangeSum(index, index)
}
