package rbtree

import "iter"

// InOrder returns all keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// PreOrder returns all keys in pre-order (node, left, right).
func (t *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, t.Len())
	var walk func(ref)
	walk = func(x ref) {
		if x == nilRef {
			return
		}
		keys = append(keys, t.nodes[x].key)
		walk(t.nodes[x].left)
		walk(t.nodes[x].right)
	}
	if len(t.nodes) > 0 {
		walk(t.root)
	}
	return keys
}

// All iterates over the keys in ascending order. It walks up the parent
// links instead of keeping a stack.
//
// The tree must not be modified during iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if len(t.nodes) == 0 || t.root == nilRef {
			return
		}
		for x := t.minimum(t.root); x != nilRef; x = t.successor(x) {
			if !yield(t.nodes[x].key) {
				return
			}
		}
	}
}

func (t *Tree[K]) successor(x ref) ref {
	if r := t.nodes[x].right; r != nilRef {
		return t.minimum(r)
	}
	p := t.nodes[x].parent
	for p != nilRef && x == t.nodes[p].right {
		x, p = p, t.nodes[p].parent
	}
	return p
}
