package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/collect/tree"
)

type nodeids[T any] struct {
	idTable map[tree.Pos[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[tree.Pos[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(p tree.Pos[T]) int {
	return ids.idTable[p]
}

func (ids *nodeids[T]) alloc(p tree.Pos[T]) int {
	if id := ids.find(p); id > 0 {
		return id
	}
	ids.idTable[p] = ids.max
	ids.max++
	return ids.max - 1
}

// TreeDot outputs the structure of a binary tree in Graphviz DOT format
// (for debugging purposes).
func TreeDot[T any](t *tree.Binary[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	tour := tree.Tour[T, struct{}]{
		Pre: func(p tree.Pos[T], depth int, path []int) {
			ID := ids.alloc(p)
			left, hasLeft := p.Left()
			right, hasRight := p.Right()
			isLeaf := !hasLeft && !hasRight
			label := dotEscape(fmt.Sprintf("%v", p.Value()))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(isLeaf))
			if isLeaf {
				return
			}
			// emit a placeholder for a missing child to keep the geometry
			if hasLeft {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(left))
			} else {
				nilid := ID + 10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			}
			if hasRight {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(right))
			} else {
				nilid := ID + 20000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			}
		},
	}
	tour.Run(t)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=gray,shape=point,fixedsize=true,width=.15]"
}

func nodeDotStyles(isleaf bool) string {
	s := "style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=\"#d7e4a3\""
	} else {
		s += ",color=black,shape=circle,fillcolor=\"#a3d7e4\""
	}
	return s
}
