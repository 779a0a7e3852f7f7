package fenwick

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// Tree is a Fenwick tree over n values of type T.
type Tree[T ordtrees.Number] struct {
	n    int
	tree []T // 1-based, tree[0] is unused
}

// New creates a tree over n zero values.
func New[T ordtrees.Number](n int) (*Tree[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ordtrees.ErrInvalidArgument, n)
	}
	return &Tree[T]{n: n, tree: make([]T, n+1)}, nil
}

// FromSlice creates a tree holding values. values[0] ends up at position 1.
func FromSlice[T ordtrees.Number](values []T) *Tree[T] {
	t, _ := New[T](len(values))
	for i, v := range values {
		t.add(i+1, v)
	}
	return t
}

// Len returns the number of values.
func (t *Tree[T]) Len() int {
	return t.n
}

// Update adds delta to the value at position index, 1 ≤ index ≤ Len().
func (t *Tree[T]) Update(index int, delta T) error {
	if index < 1 || index > t.n {
		return outOfBounds(index, t.n)
	}
	t.add(index, delta)
	return nil
}

func (t *Tree[T]) add(i int, delta T) {
	for ; i <= t.n; i += lowbit(i) {
		t.tree[i] += delta
	}
}

// PrefixSum returns the sum of the values at positions 1 through index.
// An index beyond Len() is clamped to Len(); a non-positive index yields 0.
func (t *Tree[T]) PrefixSum(index int) T {
	var sum T
	for i := min(index, t.n); i > 0; i -= lowbit(i) {
		sum += t.tree[i]
	}
	return sum
}

// RangeSum returns the sum of the values at positions left through right,
// both inclusive. It is 0 if left > right.
func (t *Tree[T]) RangeSum(left, right int) T {
	if left > right {
		return 0
	}
	return t.PrefixSum(right) - t.PrefixSum(left-1)
}

// Value returns the value at position index, 0 for positions outside 1…Len().
func (t *Tree[T]) Value(index int) T {
	return t.RangeSum(index, index)
}

// SetValue sets the value at position index, 1 ≤ index ≤ Len().
func (t *Tree[T]) SetValue(index int, value T) error {
	if index < 1 || index > t.n {
		return outOfBounds(index, t.n)
	}
	t.add(index, value-t.Value(index))
	return nil
}

// Values returns a copy of the values, values[0] being the value at
// position 1.
func (t *Tree[T]) Values() []T {
	a := make([]T, t.n+1)
	copy(a, t.tree)
	// undo the bottom-up accumulation, largest positions first
	for i := t.n; i > 0; i-- {
		if j := i + lowbit(i); j <= t.n {
			a[j] -= a[i]
		}
	}
	return a[1:]
}

// Raw returns a copy of the internal array, without the unused slot 0.
// Entry i−1 holds the sum over positions (i − lowbit(i)) + 1 through i.
func (t *Tree[T]) Raw() []T {
	return append([]T(nil), t.tree[1:]...)
}

// Merge adds the values of other to t, position by position. Both trees must
// have the same size.
func (t *Tree[T]) Merge(other *Tree[T]) error {
	if other == nil || other.n != t.n {
		n := -1
		if other != nil {
			n = other.n
		}
		return fmt.Errorf("%w: cannot merge tree of size %d into size %d",
			ordtrees.ErrIncompatibleOperands, n, t.n)
	}
	// partial sums are linear in the values
	for i := 1; i <= t.n; i++ {
		t.tree[i] += other.tree[i]
	}
	return nil
}

// CheckFrequencies returns an error if a value is negative, in which case
// LowerBound and Kth do not yield meaningful results.
func (t *Tree[T]) CheckFrequencies() error {
	for i, v := range t.Values() {
		if v < 0 {
			return fmt.Errorf("%w: negative frequency %v at position %d",
				ordtrees.ErrInvalidArgument, v, i+1)
		}
	}
	return nil
}
