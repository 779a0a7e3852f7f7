package rbtree

import (
	"github.com/npillmayer/ordtrees"
	"golang.org/x/exp/constraints"
)

// Tree is a red-black tree holding a set of unique keys.
//
// The zero value is an empty tree.
type Tree[K constraints.Ordered] struct {
	nodes []rbnode[K] // nodes[0] is the sentinel
	root  ref
	free  ref // head of the free slot list
	size  int
	stats ordtrees.Stats
}

// New creates an empty tree.
func New[K constraints.Ordered]() *Tree[K] {
	t := &Tree[K]{}
	t.init()
	return t
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

// Height returns the length of the longest root-to-leaf path in nodes,
// 0 for an empty tree. Height is computed, O(n).
func (t *Tree[K]) Height() int {
	if t == nil || t.root == nilRef {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[K]) height(x ref) int {
	if x == nilRef {
		return 0
	}
	return 1 + max(t.height(t.nodes[x].left), t.height(t.nodes[x].right))
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

// Clear removes all keys and truncates the node arena. Counters are kept.
func (t *Tree[K]) Clear() {
	t.init()
	clear(t.nodes[1:])
	t.nodes = t.nodes[:1]
	t.nodes[nilRef] = rbnode[K]{}
	t.root, t.free, t.size = nilRef, nilRef, 0
}

// find returns the node holding key or the sentinel.
func (t *Tree[K]) find(key K) ref {
	if len(t.nodes) == 0 {
		return nilRef
	}
	x := t.root
	for x != nilRef {
		switch n := &t.nodes[x]; {
		case key < n.key:
			x = n.left
		case key > n.key:
			x = n.right
		default:
			return x
		}
	}
	return nilRef
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != nilRef
}

// Min returns the smallest key. The second return value is false for an
// empty tree.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.root == nilRef {
		return zero, false
	}
	return t.nodes[t.minimum(t.root)].key, true
}

// Max returns the greatest key. The second return value is false for an
// empty tree.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.root == nilRef {
		return zero, false
	}
	return t.nodes[t.maximum(t.root)].key, true
}

// Insert adds key to the tree and returns the tree, allowing calls to be
// chained. Inserting a key already present leaves the tree unchanged.
func (t *Tree[K]) Insert(key K) *Tree[K] {
	t.init()
	p, x := nilRef, t.root
	for x != nilRef {
		p = x
		switch n := &t.nodes[x]; {
		case key < n.key:
			x = n.left
		case key > n.key:
			x = n.right
		default:
			return t
		}
	}
	z := t.alloc(key)
	t.nodes[z].parent = p
	switch {
	case p == nilRef:
		t.root = z
	case key < t.nodes[p].key:
		t.nodes[p].left = z
	default:
		t.nodes[p].right = z
	}
	t.size++
	t.stats.Inserts++
	t.insertFixup(z)
	return t
}

// insertFixup restores the red-black properties after z has been linked in
// as a red leaf. A red uncle is resolved by recoloring and continuing at the
// grandparent; a black uncle by at most two rotations, which terminates.
func (t *Tree[K]) insertFixup(z ref) {
	for t.colorOf(t.parent(z)) == red {
		p := t.parent(z)
		g := t.parent(p)
		if p == t.left(g) {
			if u := t.right(g); t.colorOf(u) == red {
				t.paint(p, black)
				t.paint(u, black)
				t.paint(g, red)
				z = g
				continue
			}
			if z == t.right(p) {
				z = p
				t.rotateLeft(z)
				p = t.parent(z)
			}
			t.paint(p, black)
			t.paint(g, red)
			t.rotateRight(g)
		} else {
			if u := t.left(g); t.colorOf(u) == red {
				t.paint(p, black)
				t.paint(u, black)
				t.paint(g, red)
				z = g
				continue
			}
			if z == t.left(p) {
				z = p
				t.rotateRight(z)
				p = t.parent(z)
			}
			t.paint(p, black)
			t.paint(g, red)
			t.rotateLeft(g)
		}
	}
	t.paint(t.root, black)
}

// Remove deletes key from the tree and returns the tree. Removing an absent
// key leaves the tree unchanged.
//
// A node with two children takes over the key of its in-order successor,
// which is then removed instead; thus the node actually spliced out has at
// most one child.
func (t *Tree[K]) Remove(key K) *Tree[K] {
	z := t.find(key)
	if z == nilRef {
		return t
	}
	if t.left(z) != nilRef && t.right(z) != nilRef {
		s := t.minimum(t.right(z))
		t.nodes[z].key = t.nodes[s].key
		z = s
	}
	x := t.left(z)
	if x == nilRef {
		x = t.right(z)
	}
	removedColor := t.colorOf(z)
	t.transplant(z, x)
	t.release(z)
	if removedColor == black {
		t.removeFixup(x)
	}
	t.nodes[nilRef].parent = nilRef
	t.size--
	t.stats.Removes++
	return t
}

// removeFixup resolves the extra black carried by x after a black node has
// been spliced out above it.
func (t *Tree[K]) removeFixup(x ref) {
	for x != t.root && t.colorOf(x) == black {
		p := t.parent(x)
		if x == t.left(p) {
			w := t.right(p)
			if t.colorOf(w) == red { // red sibling: rotate to get a black one
				t.paint(w, black)
				t.paint(p, red)
				t.rotateLeft(p)
				w = t.right(p)
			}
			if t.colorOf(t.left(w)) == black && t.colorOf(t.right(w)) == black {
				t.paint(w, red)
				x = p
				continue
			}
			if t.colorOf(t.right(w)) == black {
				t.paint(t.left(w), black)
				t.paint(w, red)
				t.rotateRight(w)
				w = t.right(p)
			}
			t.paint(w, t.colorOf(p))
			t.paint(p, black)
			t.paint(t.right(w), black)
			t.rotateLeft(p)
			x = t.root
		} else {
			w := t.left(p)
			if t.colorOf(w) == red {
				t.paint(w, black)
				t.paint(p, red)
				t.rotateRight(p)
				w = t.left(p)
			}
			if t.colorOf(t.left(w)) == black && t.colorOf(t.right(w)) == black {
				t.paint(w, red)
				x = p
				continue
			}
			if t.colorOf(t.left(w)) == black {
				t.paint(t.right(w), black)
				t.paint(w, red)
				t.rotateLeft(w)
				w = t.left(p)
			}
			t.paint(w, t.colorOf(p))
			t.paint(p, black)
			t.paint(t.left(w), black)
			t.rotateRight(p)
			x = t.root
		}
	}
	t.paint(x, black)
}
