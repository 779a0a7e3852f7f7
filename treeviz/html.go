package treeviz

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML renders a snapshot as nested HTML lists:
//
//	<ul class="tree"><li class="red"><span>20</span><ul>…</ul></li></ul>
//
// Every <li> holds the node label in a <span>, an optional note in a <small>,
// and a <ul> with the children in left/right order. Missing children of inner
// nodes are rendered as <li class="nil">.
func WriteHTML(root *Node, w io.Writer) error {
	list := element(atom.Ul, "tree")
	if root != nil {
		list.AppendChild(htmlItem(root))
	}
	if err := html.Render(w, list); err != nil {
		tracer().Errorf("tree HTML: %s", err.Error())
		return err
	}
	return nil
}

func htmlItem(n *Node) *html.Node {
	class := n.Color.String()
	if class == "" {
		class = "node"
	}
	li := element(atom.Li, class)
	span := element(atom.Span, "")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: n.Label})
	li.AppendChild(span)
	if n.Note != "" {
		small := element(atom.Small, "")
		small.AppendChild(&html.Node{Type: html.TextNode, Data: n.Note})
		li.AppendChild(small)
	}
	if n.Left == nil && n.Right == nil {
		return li
	}
	children := element(atom.Ul, "")
	for _, child := range [2]*Node{n.Left, n.Right} {
		if child == nil {
			children.AppendChild(element(atom.Li, "nil"))
			continue
		}
		children.AppendChild(htmlItem(child))
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
