package treeviz

// Color is the color of a snapshot node. Uncolored is used by trees which do
// not balance by color.
type Color uint8

const (
	Uncolored Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return ""
}

// Node is a snapshot of a binary tree node.
//
// Label is the primary text of a node (usually its key), Note an optional
// secondary annotation like cached heights or pending lazy values.
type Node struct {
	Label       string
	Note        string
	Color       Color
	Left, Right *Node
}

// Walk visits the nodes of the subtree rooted at n in pre-order. Depth of n is 0.
// Walking stops early if fn returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	if n == nil || fn == nil {
		return
	}
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	if n.Left != nil && !n.Left.walk(fn, depth+1) {
		return false
	}
	if n.Right != nil && !n.Right.walk(fn, depth+1) {
		return false
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	cnt := 0
	n.Walk(func(*Node, int) bool {
		cnt++
		return true
	})
	return cnt
}

// Height returns the number of levels of the subtree rooted at n.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}
