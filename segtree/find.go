package segtree

// FindFirst returns the leftmost index whose leaf satisfies cond, or -1.
//
// The search descends from the root, calling cond(aggregate, value) for the
// aggregate of each visited node and entering the left subtree first. A
// subtree is skipped whenever cond rejects its aggregate. The search is
// efficient only if cond holding for a leaf implies it holding for all
// ancestors of the leaf, e.g. "max ≥ value" on a max tree; it is the
// caller's task to pair cond with a fitting aggregation.
func (t *Tree[T]) FindFirst(cond func(agg, value T) bool, value T) int {
	if t.n == 0 {
		return -1
	}
	return t.find(1, 0, t.n-1, cond, value)
}

func (t *Tree[T]) find(node, start, end int, cond func(T, T) bool, value T) int {
	t.push(node, start, end)
	if !cond(t.tree[node], value) {
		return -1
	}
	if start == end {
		return start
	}
	mid := (start + end) / 2
	if i := t.find(2*node, start, mid, cond, value); i >= 0 {
		return i
	}
	return t.find(2*node+1, mid+1, end, cond, value)
}
