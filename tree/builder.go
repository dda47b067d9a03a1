package tree

// Builder constructs a tree top down, taking ownership of everything attached
// through it.
type Builder struct {
	node *Node
}

func NewBuilder(val uint64) *Builder {
	return &Builder{node: New(val)}
}

// Leaf appends a leaf labeled val and returns b for chaining.
func (b *Builder) Leaf(val uint64) *Builder {
	b.node.AddChildValue(val)
	return b
}

// Child appends a node labeled val and returns a builder for it.
func (b *Builder) Child(val uint64) *Builder {
	return &Builder{node: b.node.AddChildValue(val)}
}

// Attach appends a previously built subtree. sub must not be attached
// anywhere else. A nil sub is equivalent to Empty.
func (b *Builder) Attach(sub *Node) *Builder {
	b.node.AddChildNode(sub)
	return b
}

// Empty appends an empty slot.
func (b *Builder) Empty() *Builder {
	b.node.AddChildNode(nil)
	return b
}

// Node returns the node under construction.
func (b *Builder) Node() *Node {
	return b.node
}
