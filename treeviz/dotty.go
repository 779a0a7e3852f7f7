package treeviz

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs a tree snapshot in Graphviz DOT format.
//
// Missing children of inner nodes are drawn as small empty circles, so the
// left/right orientation of single children stays visible.
func ToDot(root *Node, w io.Writer) error {
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nilid := 10000
	var nodelist, edgelist strings.Builder
	root.Walk(func(node *Node, depth int) bool {
		ID := ids.alloc(node)
		label := dotEscape(node.Label)
		if node.Note != "" {
			label += "\\n" + dotEscape(node.Note)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(node))
		if node.Left == nil && node.Right == nil {
			return true
		}
		for _, child := range [2]*Node{node.Left, node.Right} {
			if child == nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return true
	})
	bf.WriteString(nodelist.String())
	bf.WriteString(edgelist.String())
	bf.WriteString("}\n")
	if _, err := io.WriteString(w, bf.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(node *Node) string {
	s := ",style=filled,shape=circle"
	switch node.Color {
	case Red:
		s += ",color=black,fillcolor=\"#cc2222\",fontcolor=white"
	case Black:
		s += ",color=black,fillcolor=black,fontcolor=white"
	default:
		if node.Left == nil && node.Right == nil {
			s = ",style=filled,shape=box,fillcolor=white"
		} else {
			s += ",color=black,fillcolor=\"#a3d7e4\""
		}
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
