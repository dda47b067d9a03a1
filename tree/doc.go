package tree

/*

# Ordered n-ary trees with optional child slots

This package provides the in-memory tree consumed and produced by the
`go-flattree/codec` package.

A Node carries a uint64 label and an ordered list of child slots. A slot is
either a populated *Node or nil, an explicitly empty slot. Slot order is
significant and the number of slots (populated or not) is the node's declared
child count.

## Ownership

Each node exclusively owns the subtrees reachable through its populated
slots. Attaching a node to a parent hands it over; the caller must not attach
the same node a second time, anywhere in the tree. Nothing in this package
enforces that at attach time. Use Check to find violations (which includes
cycles) before handing a tree built from untrusted parts to the codec.

The Builder gives the same ownership discipline a single call site:

	b := tree.NewBuilder(1)
	b.Child(3).Leaf(5).Leaf(6)
	b.Leaf(2).Leaf(4)
	root := b.Node()

## Empty slots

Empty slots are kept because callers may need positional arity (eg, a fixed
width node where some positions are unset). They are not representable in
the plain codec format; see `codec.FormatSlots`.

*/
