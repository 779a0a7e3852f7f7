package fenwick

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// Tree2D is a Fenwick tree over a grid of rows × cols values. Cells are
// addressed by 1-based (row, col) pairs.
type Tree2D[T ordtrees.Number] struct {
	rows, cols int
	tree       []T // (rows+1) × (cols+1), row-major; row 0 and column 0 are unused
}

// New2D creates a grid of zero values.
func New2D[T ordtrees.Number](rows, cols int) (*Tree2D[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %d × %d", ordtrees.ErrInvalidArgument, rows, cols)
	}
	return &Tree2D[T]{
		rows: rows,
		cols: cols,
		tree: make([]T, (rows+1)*(cols+1)),
	}, nil
}

// Rows returns the number of rows.
func (t *Tree2D[T]) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Tree2D[T]) Cols() int { return t.cols }

func (t *Tree2D[T]) at(r, c int) *T {
	return &t.tree[r*(t.cols+1)+c]
}

// Update adds delta to the cell at (row, col).
func (t *Tree2D[T]) Update(row, col int, delta T) error {
	if row < 1 || row > t.rows {
		return fmt.Errorf("row: %w", outOfBounds(row, t.rows))
	}
	if col < 1 || col > t.cols {
		return fmt.Errorf("column: %w", outOfBounds(col, t.cols))
	}
	for r := row; r <= t.rows; r += lowbit(r) {
		for c := col; c <= t.cols; c += lowbit(c) {
			*t.at(r, c) += delta
		}
	}
	return nil
}

// PrefixSum returns the sum over the rectangle (1,1) through (row, col).
// Arguments are clamped as with Tree.PrefixSum.
func (t *Tree2D[T]) PrefixSum(row, col int) T {
	var sum T
	for r := min(row, t.rows); r > 0; r -= lowbit(r) {
		for c := min(col, t.cols); c > 0; c -= lowbit(c) {
			sum += *t.at(r, c)
		}
	}
	return sum
}

// RangeSum returns the sum over the rectangle with corners (r1, c1) and
// (r2, c2), both inclusive. An empty rectangle yields 0.
func (t *Tree2D[T]) RangeSum(r1, c1, r2, c2 int) T {
	if r1 > r2 || c1 > c2 {
		return 0
	}
	return t.PrefixSum(r2, c2) - t.PrefixSum(r1-1, c2) -
		t.PrefixSum(r2, c1-1) + t.PrefixSum(r1-1, c1-1)
}

// Value returns the value of the cell at (row, col).
func (t *Tree2D[T]) Value(row, col int) T {
	return t.RangeSum(row, col, row, col)
}
