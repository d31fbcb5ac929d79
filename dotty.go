package rope

import (
	"bytes"
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes).
//
// Subtrees shared between different parts of the rope are output once, with
// multiple incoming edges.
func Rope2Dot(text Rope, w io.Writer) error {
	var bf bytes.Buffer
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	seen := make(map[*node]bool)
	nodelist, edgelist := "", ""
	if text.root != nil {
		_ = traverse(text.root, 0, 0, func(n *node, pos int, depth int) error {
			if seen[n] { // shared subtree, already output
				return nil
			}
			seen[n] = true
			ID := ids.alloc(n)
			styles := nodeDotStyles(n.isLeaf())
			if n.isLeaf() {
				label := fmt.Sprintf("%d @%d\\n“%s”", n.length, n.offset, dotEscape(strstart(n.text())))
				nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, label, styles)
				return nil
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.left))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.right))
			nodelist += fmt.Sprintf("\"%d\" [label=%d%s];\n", ID, n.length, styles)
			return nil
		})
	}
	bf.WriteString(nodelist)
	bf.WriteString(edgelist)
	bf.WriteString("}\n")
	_, err := bf.WriteTo(w)
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			out = append(out, '\\', s[i])
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
