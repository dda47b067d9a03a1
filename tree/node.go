package tree

import "errors"

var ErrSharedNode = errors.New("tree: node reachable more than once")

// Node is a single tree node. A nil entry in Children is an empty slot.
type Node struct {
	Val      uint64
	Children []*Node
}

// New returns a node with no children.
func New(val uint64) *Node {
	return &Node{Val: val}
}

// Wrap returns a handle owning n, ready to be attached to a parent.
func Wrap(n Node) *Node {
	return &n
}

// AddChildValue appends a new leaf labeled val and returns it.
func (n *Node) AddChildValue(val uint64) *Node {
	child := New(val)
	n.Children = append(n.Children, child)
	return child
}

// AddChildNode appends child as the next slot. A nil child appends an empty
// slot. n takes ownership of child.
func (n *Node) AddChildNode(child *Node) {
	n.Children = append(n.Children, child)
}

// IsLeaf is true if n has no slots at all, populated or empty.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
