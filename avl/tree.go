package avl

import (
	"github.com/npillmayer/ordtrees"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree holding a set of unique keys.
//
// The zero value is an empty tree.
type Tree[K constraints.Ordered] struct {
	root  *node[K]
	size  int
	stats ordtrees.Stats
}

// New creates an empty tree.
func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// FromSlice creates a tree by inserting keys one after another. Duplicates
// are dropped.
func FromSlice[K constraints.Ordered](keys []K) *Tree[K] {
	t := New[K]()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a single node.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Stats returns a copy of the tree's diagnostic counters.
func (t *Tree[K]) Stats() ordtrees.Stats {
	if t == nil {
		return ordtrees.Stats{}
	}
	s := t.stats
	s.Size, s.Height = t.Len(), t.Height()
	return s
}

// Clear removes all keys. Counters are kept.
func (t *Tree[K]) Clear() {
	t.root, t.size = nil, 0
}

// Insert adds key to the tree and returns the tree, allowing calls to be
// chained. Inserting a key already present leaves the tree unchanged.
func (t *Tree[K]) Insert(key K) *Tree[K] {
	var inserted bool
	t.root, inserted = t.insert(t.root, key)
	if inserted {
		t.size++
		t.stats.Inserts++
	}
	return t
}

// insert descends to the insertion point and rebalances on unwind. The case
// of an unbalanced node is determined by comparing key with the key of the
// heavy child.
func (t *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return &node[K]{key: key, height: 1}, true
	}
	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = t.insert(n.left, key)
	case key > n.key:
		n.right, inserted = t.insert(n.right, key)
	default:
		return n, false
	}
	if !inserted {
		return n, false
	}
	n.fixHeight()
	switch bf := balance(n); {
	case bf > 1 && key < n.left.key: // left-left
		return t.rotateRight(n), true
	case bf < -1 && key > n.right.key: // right-right
		return t.rotateLeft(n), true
	case bf > 1 && key > n.left.key: // left-right
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n), true
	case bf < -1 && key < n.right.key: // right-left
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n), true
	}
	return n, true
}

// Remove deletes key from the tree and returns the tree. Removing an absent
// key leaves the tree unchanged.
func (t *Tree[K]) Remove(key K) *Tree[K] {
	var removed bool
	t.root, removed = t.remove(t.root, key)
	if removed {
		t.size--
		t.stats.Removes++
	}
	return t
}

func (t *Tree[K]) remove(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = t.remove(n.left, key)
	case key > n.key:
		n.right, removed = t.remove(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.right, removed = t.remove(n.right, succ.key)
		assert(removed, "avl: in-order successor vanished")
	}
	if !removed {
		return n, false
	}
	return t.rebalance(n), true
}

// rebalance restores the AVL property at n after a removal below it.
//
// Unlike insertion, the case is selected by the balance factor of the heavy
// child, and a child in perfect balance takes the single-rotation branch.
func (t *Tree[K]) rebalance(n *node[K]) *node[K] {
	n.fixHeight()
	switch bf := balance(n); {
	case bf > 1 && balance(n.left) >= 0:
		return t.rotateRight(n)
	case bf > 1:
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n)
	case bf < -1 && balance(n.right) <= 0:
		return t.rotateLeft(n)
	case bf < -1:
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n)
	}
	return n
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key. The second return value is false for an
// empty tree.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the greatest key. The second return value is false for an
// empty tree.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}
