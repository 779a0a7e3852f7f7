package rbtree

import "golang.org/x/exp/constraints"

type color uint8

const (
	black color = iota // zero value, so the sentinel is black from the start
	red
)

// ref is an index into the node arena. nilRef is the sentinel leaf.
type ref int32

const nilRef ref = 0

// rbnode is an arena slot. For slots on the free list, left links to the
// next free slot.
type rbnode[K constraints.Ordered] struct {
	key                 K
	left, right, parent ref
	color               color
}

// init makes sure the sentinel slot exists, so the zero value of Tree is usable.
func (t *Tree[K]) init() {
	if len(t.nodes) == 0 {
		t.nodes = make([]rbnode[K], 1, 16)
	}
}

// alloc returns a red node holding key, reusing a free slot if available.
// Pointers into the arena must not be held across calls to alloc.
func (t *Tree[K]) alloc(key K) ref {
	if t.free != nilRef {
		x := t.free
		t.free = t.nodes[x].left
		t.nodes[x] = rbnode[K]{key: key, color: red}
		return x
	}
	assert(len(t.nodes) < 1<<31-1, "rbtree: arena exhausted")
	t.nodes = append(t.nodes, rbnode[K]{key: key, color: red})
	return ref(len(t.nodes) - 1)
}

// release puts slot x on the free list.
func (t *Tree[K]) release(x ref) {
	assert(x != nilRef, "rbtree: cannot release the sentinel")
	t.nodes[x] = rbnode[K]{left: t.free}
	t.free = x
}

func (t *Tree[K]) left(x ref) ref      { return t.nodes[x].left }
func (t *Tree[K]) right(x ref) ref     { return t.nodes[x].right }
func (t *Tree[K]) parent(x ref) ref    { return t.nodes[x].parent }
func (t *Tree[K]) colorOf(x ref) color { return t.nodes[x].color }

// paint sets the color of x. The sentinel always stays black.
func (t *Tree[K]) paint(x ref, c color) {
	if x == nilRef || t.nodes[x].color == c {
		return
	}
	t.nodes[x].color = c
	t.stats.Recolors++
}

// replaceChild links y into the position of old below p. A nil p makes y the root.
func (t *Tree[K]) replaceChild(p, old, y ref) {
	switch {
	case p == nilRef:
		t.root = y
	case t.nodes[p].left == old:
		t.nodes[p].left = y
	default:
		t.nodes[p].right = y
	}
}

// rotateLeft lifts the right child y of x into x's position.
//
//	  x                y
//	 / \              / \
//	A   y     →      x   C
//	   / \          / \
//	  B   C        A   B
func (t *Tree[K]) rotateLeft(x ref) {
	y := t.nodes[x].right
	assert(y != nilRef, "rotateLeft needs a right child")
	b := t.nodes[y].left
	t.nodes[x].right = b
	if b != nilRef {
		t.nodes[b].parent = x
	}
	p := t.nodes[x].parent
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)
	t.nodes[y].left = x
	t.nodes[x].parent = y
	t.stats.Rotations++
	tracer().Debugf("rbtree: rotate left at %v", t.nodes[x].key)
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[K]) rotateRight(x ref) {
	y := t.nodes[x].left
	assert(y != nilRef, "rotateRight needs a left child")
	b := t.nodes[y].right
	t.nodes[x].left = b
	if b != nilRef {
		t.nodes[b].parent = x
	}
	p := t.nodes[x].parent
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)
	t.nodes[y].right = x
	t.nodes[x].parent = y
	t.stats.Rotations++
	tracer().Debugf("rbtree: rotate right at %v", t.nodes[x].key)
}

// transplant replaces the subtree at u by the subtree at v. v may be the
// sentinel, whose parent link is then set temporarily for delete fix-up.
func (t *Tree[K]) transplant(u, v ref) {
	p := t.nodes[u].parent
	t.replaceChild(p, u, v)
	t.nodes[v].parent = p
}

func (t *Tree[K]) minimum(x ref) ref {
	for t.nodes[x].left != nilRef {
		x = t.nodes[x].left
	}
	return x
}

func (t *Tree[K]) maximum(x ref) ref {
	for t.nodes[x].right != nilRef {
		x = t.nodes[x].right
	}
	return x
}
