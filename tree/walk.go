package tree

import "fmt"

type walkEntry struct {
	node  *Node
	depth int
}

// Walk visits every populated node of root in pre-order. depth is zero for
// root. The walk stops as soon as fn returns false.
//
// Walk uses an explicit stack, so arbitrarily deep trees are fine. It does not
// detect cycles; see Check.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	if root == nil {
		return
	}
	stack := []walkEntry{{node: root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(e.node, e.depth) {
			return
		}
		// push in reverse so the first slot is visited next
		for i := len(e.node.Children) - 1; i >= 0; i-- {
			if c := e.node.Children[i]; c != nil {
				stack = append(stack, walkEntry{node: c, depth: e.depth + 1})
			}
		}
	}
}

// Size returns the number of populated nodes in the tree.
func Size(root *Node) int {
	n := 0
	Walk(root, func(*Node, int) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of nodes on the longest root to leaf path. The
// empty tree has height 0.
func Height(root *Node) int {
	h := 0
	Walk(root, func(_ *Node, depth int) bool {
		h = max(h, depth+1)
		return true
	})
	return h
}

// HasEmptySlots reports whether any node in the tree has a nil child slot.
func HasEmptySlots(root *Node) bool {
	found := false
	Walk(root, func(n *Node, _ int) bool {
		for _, c := range n.Children {
			if c == nil {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// Check verifies that every populated node is reachable from root exactly
// once. Trees built only through this package's attach operations, without
// attaching a node twice, always pass.
func Check(root *Node) error {
	if root == nil {
		return nil
	}
	seen := map[*Node]struct{}{root: {}}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, c := range n.Children {
			if c == nil {
				continue
			}
			if _, ok := seen[c]; ok {
				return fmt.Errorf("%w: slot %d of node val=%d", ErrSharedNode, i, n.Val)
			}
			seen[c] = struct{}{}
			stack = append(stack, c)
		}
	}
	return nil
}
