package segtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordtrees"
)

// Op selects the aggregation of a segment tree.
type Op int

// Aggregations supported by segment trees.
const (
	Sum Op = iota
	Min
	Max
	GCD
)

func (op Op) String() string {
	switch op {
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	case GCD:
		return "gcd"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp returns the operation for a tag, which is one of "sum", "min",
// "max" or "gcd" (case does not matter).
func ParseOp(tag string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "sum":
		return Sum, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "gcd":
		return GCD, nil
	}
	return Sum, fmt.Errorf("%w: unknown aggregation %q", ordtrees.ErrUnsupportedOperation, tag)
}

// Monoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid[T ordtrees.Number] interface {
	Zero() T
	Add(left, right T) T
}

// MonoidFor returns the monoid implementing op for value type T.
// GCD is defined for integer types only.
func MonoidFor[T ordtrees.Number](op Op) (Monoid[T], error) {
	switch op {
	case Sum:
		return SumMonoid[T]{}, nil
	case Min:
		return MinMonoid[T]{}, nil
	case Max:
		return MaxMonoid[T]{}, nil
	case GCD:
		if ordtrees.IsFloat[T]() {
			return nil, fmt.Errorf("%w: gcd of floating point values", ordtrees.ErrUnsupportedOperation)
		}
		return GCDMonoid[T]{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ordtrees.ErrUnsupportedOperation, op)
}

// SumMonoid adds values.
type SumMonoid[T ordtrees.Number] struct{}

// Zero returns 0.
func (SumMonoid[T]) Zero() T { return 0 }

// Add returns left + right.
func (SumMonoid[T]) Add(left, right T) T { return left + right }

// MinMonoid selects the smaller value.
type MinMonoid[T ordtrees.Number] struct{}

// Zero returns the greatest value of T.
func (MinMonoid[T]) Zero() T { return ordtrees.Upper[T]() }

// Add returns the smaller of left and right.
func (MinMonoid[T]) Add(left, right T) T { return min(left, right) }

// MaxMonoid selects the greater value.
type MaxMonoid[T ordtrees.Number] struct{}

// Zero returns the least value of T.
func (MaxMonoid[T]) Zero() T { return ordtrees.Lower[T]() }

// Add returns the greater of left and right.
func (MaxMonoid[T]) Add(left, right T) T { return max(left, right) }

// GCDMonoid computes the greatest common divisor of absolute values.
// T must be an integer type. Results are not negative, except for
// gcd(m, 0) with m the least value of a signed T: |m| is not representable
// and wraps around to m.
type GCDMonoid[T ordtrees.Number] struct{}

// Zero returns 0, as gcd(0, x) = |x|.
func (GCDMonoid[T]) Zero() T { return 0 }

// Add returns gcd(|left|, |right|).
func (GCDMonoid[T]) Add(left, right T) T {
	a, b := magnitude(left), magnitude(right)
	for b != 0 {
		a, b = b, a%b
	}
	return T(a)
}

// magnitude returns |v| as uint64, without overflow for the least value of
// signed types.
func magnitude[T ordtrees.Number](v T) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return uint64(-(int64(v) + 1)) + 1
}
