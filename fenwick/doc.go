/*
Package fenwick implements Fenwick trees (binary indexed trees) for prefix
sums over a fixed number of values.

A Fenwick tree over n values stores, at 1-based position i, the sum of the
values in (i − lowbit(i), i], where lowbit(i) is the least significant set
bit of i. Point updates and prefix sums both walk O(log n) positions.

Besides the basic Tree, the package offers

  - Tree2D, for rectangular sums over a grid of values,
  - RangeAdder, which adds a delta to a range of values and reads single
    values, by keeping the difference array in a Tree,
  - RangeTree, which adds deltas to ranges and answers range sums, using
    two Trees.

Positions are 1-based throughout. Updates reject positions outside 1…n with
an error, whereas query methods clamp their arguments.

Searching methods (LowerBound, Kth) require all values to be non-negative,
i.e. the tree holds frequencies. This is not enforced; CheckFrequencies
validates it on request.

Trees are not safe for concurrent mutation; callers must serialize access.

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package fenwick

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}

func lowbit(i int) int {
	return i & -i
}

func outOfBounds(index, n int) error {
	tracer().Debugf("fenwick: rejecting position %d for size %d", index, n)
	return fmt.Errorf("%w: %w: position %d not in 1…%d", ordtrees.ErrInvalidArgument,
		ordtrees.ErrIndexOutOfBounds, index, n)
}
