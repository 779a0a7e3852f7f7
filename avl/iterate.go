package avl

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// InOrder returns all keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.Len())
	walkIn(t.root, func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// PreOrder returns all keys in pre-order (node, left, right).
func (t *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, t.Len())
	var walk func(*node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		keys = append(keys, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

// PostOrder returns all keys in post-order (left, right, node).
func (t *Tree[K]) PostOrder() []K {
	keys := make([]K, 0, t.Len())
	var walk func(*node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		keys = append(keys, n.key)
	}
	walk(t.root)
	return keys
}

// All iterates over the keys in ascending order.
//
// The tree must not be modified during iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		walkIn(t.root, yield)
	}
}

func walkIn[K constraints.Ordered](n *node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return walkIn(n.left, fn) && fn(n.key) && walkIn(n.right, fn)
}
