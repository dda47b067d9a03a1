package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeAttach(t *testing.T) {
	root := New(1)
	require.True(t, root.IsLeaf())

	c := root.AddChildValue(3)
	require.Equal(t, uint64(3), c.Val)
	require.Same(t, c, root.Children[0])

	root.AddChildNode(Wrap(Node{Val: 2}))
	root.AddChildNode(nil)

	require.Len(t, root.Children, 3)
	require.Equal(t, uint64(2), root.Children[1].Val)
	require.Nil(t, root.Children[2])
	require.False(t, root.IsLeaf())
}

func TestWrapCopiesTheValue(t *testing.T) {
	n := Node{Val: 7}
	h := Wrap(n)
	n.Val = 8
	require.Equal(t, uint64(7), h.Val)
}

func TestBuilderMatchesAttachOps(t *testing.T) {
	want := New(1)
	c1 := want.AddChildValue(3)
	c1.AddChildValue(5)
	c1.AddChildValue(6)
	want.AddChildValue(2)
	want.AddChildNode(nil)

	b := NewBuilder(1)
	b.Child(3).Leaf(5).Leaf(6)
	b.Leaf(2).Empty()

	require.True(t, Equal(want, b.Node()))
	require.Equal(t, "1(3(5 6) 2 _)", b.Node().String())
}

func TestBuilderAttach(t *testing.T) {
	sub := NewBuilder(9).Leaf(10).Node()
	root := NewBuilder(1).Attach(sub).Attach(nil).Node()
	require.Same(t, sub, root.Children[0])
	require.Nil(t, root.Children[1])
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs node", nil, New(1), false},
		{"leaves", New(1), New(1), true},
		{"leaf vals differ", New(1), New(2), false},
		{
			"arity differs",
			NewBuilder(1).Leaf(2).Node(),
			NewBuilder(1).Leaf(2).Leaf(3).Node(),
			false,
		},
		{
			"order matters",
			NewBuilder(1).Leaf(2).Leaf(3).Node(),
			NewBuilder(1).Leaf(3).Leaf(2).Node(),
			false,
		},
		{
			"empty slot vs leaf",
			NewBuilder(1).Empty().Node(),
			NewBuilder(1).Leaf(0).Node(),
			false,
		},
		{
			"empty slots line up",
			NewBuilder(1).Empty().Leaf(2).Node(),
			NewBuilder(1).Empty().Leaf(2).Node(),
			true,
		},
		{
			"deep difference",
			func() *Node { b := NewBuilder(1); b.Child(2).Child(3).Leaf(4); return b.Node() }(),
			func() *Node { b := NewBuilder(1); b.Child(2).Child(3).Leaf(5); return b.Node() }(),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Equal(tt.a, tt.b))
			require.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestClone(t *testing.T) {
	b := NewBuilder(1)
	b.Child(3).Leaf(5).Empty()
	b.Leaf(2)
	orig := b.Node()

	cp := Clone(orig)
	require.True(t, Equal(orig, cp))
	require.NotSame(t, orig, cp)
	require.NotSame(t, orig.Children[0], cp.Children[0])

	cp.Children[0].Children[0].Val = 50
	require.Equal(t, uint64(5), orig.Children[0].Children[0].Val)

	require.Nil(t, Clone(nil))
}

func TestSizeHeightWalk(t *testing.T) {
	b := NewBuilder(1)
	b.Child(3).Leaf(5).Leaf(6)
	b.Leaf(2).Empty().Leaf(4)
	root := b.Node()

	require.Equal(t, 6, Size(root))
	require.Equal(t, 3, Height(root))
	require.True(t, HasEmptySlots(root))

	var vals []uint64
	var depths []int
	Walk(root, func(n *Node, depth int) bool {
		vals = append(vals, n.Val)
		depths = append(depths, depth)
		return true
	})
	require.Equal(t, []uint64{1, 3, 5, 6, 2, 4}, vals)
	require.Equal(t, []int{0, 1, 2, 2, 1, 1}, depths)

	// early stop
	visited := 0
	Walk(root, func(*Node, int) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)

	require.Equal(t, 0, Size(nil))
	require.Equal(t, 0, Height(nil))
	require.False(t, HasEmptySlots(nil))
	require.False(t, HasEmptySlots(New(1)))
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(nil))

	b := NewBuilder(1)
	b.Child(3).Leaf(5)
	b.Empty().Leaf(2)
	require.NoError(t, Check(b.Node()))

	shared := New(9)
	dag := New(1)
	dag.AddChildNode(shared)
	dag.AddChildNode(shared)
	require.ErrorIs(t, Check(dag), ErrSharedNode)

	cyc := New(1)
	c := cyc.AddChildValue(2)
	c.AddChildNode(cyc)
	require.ErrorIs(t, Check(cyc), ErrSharedNode)
}

func TestString(t *testing.T) {
	var n *Node
	require.Equal(t, "_", n.String())
	require.Equal(t, "7", New(7).String())
}
