package avl

import "golang.org/x/exp/constraints"

type node[K constraints.Ordered] struct {
	key         K
	left, right *node[K]
	height      int // cached; 1 for a leaf
}

func height[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance is height(left) - height(right).
func balance[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node[K]) fixHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight lifts the left child of n into n's position and returns it.
//
//	    n            l
//	   / \          / \
//	  l   C   →    A   n
//	 / \              / \
//	A   B            B   C
func (t *Tree[K]) rotateRight(n *node[K]) *node[K] {
	l := n.left
	assert(l != nil, "rotateRight needs a left child")
	n.left = l.right
	l.right = n
	n.fixHeight()
	l.fixHeight()
	t.stats.Rotations++
	tracer().Debugf("avl: rotate right at %v", n.key)
	return l
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[K]) rotateLeft(n *node[K]) *node[K] {
	r := n.right
	assert(r != nil, "rotateLeft needs a right child")
	n.right = r.left
	r.left = n
	n.fixHeight()
	r.fixHeight()
	t.stats.Rotations++
	tracer().Debugf("avl: rotate left at %v", n.key)
	return r
}
