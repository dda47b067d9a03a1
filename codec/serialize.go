package codec

import (
	"fmt"

	"github.com/forestrie/go-flattree/tree"
)

// encodeFrame is an open node whose slots [0, next) have been emitted.
type encodeFrame struct {
	node *tree.Node
	next int
}

// Serialize encodes root, pre-order, in the codec's format. A nil root
// encodes as an empty sequence.
//
// In FormatPlain a tree with any empty slot fails with ErrEmptySlot. A node
// found on its own ancestor path fails with ErrCycle in either format. Nodes
// shared between branches, without forming a cycle, are encoded once per
// occurrence.
func (c *Codec) Serialize(root *tree.Node) ([]uint64, error) {
	if root == nil {
		return []uint64{}, nil
	}
	if err := c.checkDepth(1); err != nil {
		return nil, err
	}

	format := c.opts.Format
	out := make([]uint64, 0, HeaderWords*(1+len(root.Children)))
	out = append(out, root.Val, uint64(len(root.Children)))

	onPath := map[*tree.Node]struct{}{root: {}}
	stack := []encodeFrame{{node: root}}
	nodes := 1

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.node.Children) {
			delete(onPath, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		slot := top.next
		child := top.node.Children[slot]
		top.next++

		if child == nil {
			if format == FormatPlain {
				return nil, fmt.Errorf(
					"%w: slot %d of node val=%d, depth=%d",
					ErrEmptySlot, slot, top.node.Val, len(stack))
			}
			out = append(out, slotEmpty)
			continue
		}
		if _, ok := onPath[child]; ok {
			return nil, fmt.Errorf(
				"%w: slot %d of node val=%d, depth=%d", ErrCycle, slot, top.node.Val, len(stack))
		}
		if err := c.checkDepth(len(stack) + 1); err != nil {
			return nil, err
		}

		if format == FormatSlots {
			out = append(out, slotPresent)
		}
		out = append(out, child.Val, uint64(len(child.Children)))
		nodes++

		onPath[child] = struct{}{}
		stack = append(stack, encodeFrame{node: child})
	}

	c.debugf("serialize: format=%s, nodes=%d, words=%d", format, nodes, len(out))
	return out, nil
}
