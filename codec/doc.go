package codec

/*

# Flat word encoding of n-ary trees

Serialize walks a tree depth first, pre-order, and emits for every populated
node the pair

	val, declared_child_count

followed immediately by the encodings of its children, in slot order. For the
tree

	1
	├── 3
	│   ├── 5
	│   └── 6
	├── 2
	└── 4

the plain encoding is

	[1,3, 3,2, 5,0, 6,0, 2,0, 4,0]

There is no length prefix, terminator or version word. The count of each node
tells the decoder how many child blocks follow, so the end of the root's
encoding is implicit.

Deserialize consumes a Queue from the front. Words beyond the root's encoding
are left in the queue, which allows several trees to be packed back to back.
Unmarshal decodes a whole slice and rejects trailing words.

## Empty slots

A nil child slot still counts towards the declared child count, but the plain
format has nothing to emit for it, so a decoder would read the next node's
pair in its place. Rather than emit a count it cannot honour, the plain
format refuses such trees with ErrEmptySlot.

FormatSlots precedes each slot with a presence word, 0 for empty and 1 for
populated, and round trips any tree:

	1(3(5 _) 2)  =>  [1,2, 1,3,2, 1,5,0, 0, 1,2,0]

## Traversal

Both directions keep an explicit frame stack, in the style of a builder
frontier: one frame per open node, holding the number of slots still to
process. Tree height is bounded only by memory (and WithMaxDepth, if set).

*/
