package fenwick

// topBit returns the greatest power of two ≤ n, or 0 for n < 1.
func topBit(n int) int {
	if n < 1 {
		return 0
	}
	b := 1
	for b<<1 <= n {
		b <<= 1
	}
	return b
}

// LowerBound returns the greatest position whose prefix sum is ≤ target,
// or 0 if even the first value exceeds target.
//
// The search descends by powers of two and needs non-negative values.
func (t *Tree[T]) LowerBound(target T) int {
	pos, rest := 0, target
	for step := topBit(t.n); step > 0; step >>= 1 {
		if next := pos + step; next <= t.n && t.tree[next] <= rest {
			pos = next
			rest -= t.tree[next]
		}
	}
	return pos
}

// Kth returns the smallest position whose prefix sum is ≥ k, or −1 if the
// sum of all values is less than k. With values counting occurrences of
// positions, this is the position of the k-th occurrence. A k ≤ 0 yields
// position 1.
//
// Kth needs non-negative values.
func (t *Tree[T]) Kth(k T) int {
	if t.n == 0 || t.PrefixSum(t.n) < k {
		return -1
	}
	pos, rest := 0, k
	for step := topBit(t.n); step > 0; step >>= 1 {
		if next := pos + step; next <= t.n && t.tree[next] < rest {
			pos = next
			rest -= t.tree[next]
		}
	}
	return pos + 1
}
