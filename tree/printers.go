package tree

import (
	"strconv"
	"strings"
)

// debug utilities

// String renders n as `val(child child ...)`, with `_` for an empty slot. A
// node with no slots renders as its bare value.
func (n *Node) String() string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteByte('_')
		return
	}
	sb.WriteString(strconv.FormatUint(n.Val, 10))
	if len(n.Children) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeNode(sb, c)
	}
	sb.WriteByte(')')
}
