package tree

type nodePair struct {
	a, b *Node
}

// Equal reports whether a and b have the same shape and labels: equal Val at
// every node, the same number of slots, and empty slots in the same
// positions. Two nil trees are equal.
func Equal(a, b *Node) bool {
	stack := []nodePair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.Val != p.b.Val || len(p.a.Children) != len(p.b.Children) {
			return false
		}
		for i := range p.a.Children {
			stack = append(stack, nodePair{p.a.Children[i], p.b.Children[i]})
		}
	}
	return true
}

// Clone returns a deep copy of root, including empty slots.
func Clone(root *Node) *Node {
	if root == nil {
		return nil
	}
	out := &Node{Val: root.Val}
	stack := []nodePair{{root, out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.a.Children) == 0 {
			continue
		}
		p.b.Children = make([]*Node, len(p.a.Children))
		for i, c := range p.a.Children {
			if c == nil {
				continue
			}
			p.b.Children[i] = &Node{Val: c.Val}
			stack = append(stack, nodePair{c, p.b.Children[i]})
		}
	}
	return out
}
