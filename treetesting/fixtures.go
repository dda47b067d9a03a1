// Package treetesting provides canonical trees and a seeded random tree
// generator for tests.
package treetesting

import "github.com/forestrie/go-flattree/tree"

// Fixture1 returns
//
//	1
//	├── 3
//	│   ├── 5
//	│   └── 6
//	├── 2
//	└── 4
//
// built only through the Node attach operations.
func Fixture1() *tree.Node {
	root := tree.New(1)
	c1 := tree.New(3)
	c1.AddChildValue(5)
	c1.AddChildValue(6)
	root.AddChildNode(tree.Wrap(*c1))
	root.AddChildValue(2)
	root.AddChildValue(4)
	return root
}

// Fixture1Words is the plain encoding of Fixture1.
func Fixture1Words() []uint64 {
	return []uint64{1, 3, 3, 2, 5, 0, 6, 0, 2, 0, 4, 0}
}

// FixtureEmptySlots returns 1(3(5 _) 2), which has one empty slot.
func FixtureEmptySlots() *tree.Node {
	b := tree.NewBuilder(1)
	b.Child(3).Leaf(5).Empty()
	b.Leaf(2)
	return b.Node()
}

// FixtureEmptySlotsWords is the slots format encoding of FixtureEmptySlots.
func FixtureEmptySlotsWords() []uint64 {
	return []uint64{1, 2, 1, 3, 2, 1, 5, 0, 0, 1, 2, 0}
}

// Chain returns a path of depth nodes labeled 0..depth-1, root first.
func Chain(depth int) *tree.Node {
	if depth <= 0 {
		return nil
	}
	root := tree.New(0)
	n := root
	for i := 1; i < depth; i++ {
		n = n.AddChildValue(uint64(i))
	}
	return root
}

// Fan returns a root labeled 0 with width leaf children labeled 1..width.
func Fan(width int) *tree.Node {
	root := tree.New(0)
	for i := 1; i <= width; i++ {
		root.AddChildValue(uint64(i))
	}
	return root
}
