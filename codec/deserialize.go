package codec

import (
	"fmt"

	"github.com/forestrie/go-flattree/tree"
)

// decodeFrame is an open node still expecting remaining child slots.
type decodeFrame struct {
	node      *tree.Node
	remaining uint64
}

// Deserialize decodes one tree from the front of q. An empty queue decodes as
// the empty tree (nil, nil). Words after the tree's encoding are left in q.
//
// If q runs out before every declared child has been read the result is
// ErrTruncatedInput and no partial tree is returned. How much of q was
// consumed in that case is unspecified.
func (c *Codec) Deserialize(q *Queue) (*tree.Node, error) {
	if q.Len() == 0 {
		return nil, nil
	}
	start := q.Consumed()
	format := c.opts.Format

	if err := c.checkDepth(1); err != nil {
		return nil, err
	}
	root, count, err := c.readNode(q)
	if err != nil {
		return nil, err
	}

	stack := []decodeFrame{{node: root, remaining: count}}
	nodes := 1

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.remaining == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		top.remaining--
		parent := top.node
		depth := len(stack) + 1

		if format == FormatSlots {
			at := q.Consumed()
			presence, ok := q.PopFront()
			if !ok {
				return nil, fmt.Errorf(
					"%w: presence word for a child of val=%d at offset %d", ErrTruncatedInput, parent.Val, at)
			}
			switch presence {
			case slotEmpty:
				parent.AddChildNode(nil)
				continue
			case slotPresent:
			default:
				return nil, fmt.Errorf("%w: got %d at offset %d", ErrBadPresence, presence, at)
			}
		}

		if err := c.checkDepth(depth); err != nil {
			return nil, err
		}
		child, n, err := c.readNode(q)
		if err != nil {
			return nil, err
		}
		parent.AddChildNode(child)
		nodes++
		if n > 0 {
			stack = append(stack, decodeFrame{node: child, remaining: n})
		}
	}

	c.debugf("deserialize: format=%s, nodes=%d, words=%d", format, nodes, q.Consumed()-start)
	return root, nil
}

// readNode pops a (val, count) header and returns the node with capacity for
// count children.
func (c *Codec) readNode(q *Queue) (*tree.Node, uint64, error) {
	at := q.Consumed()
	if q.Len() < HeaderWords {
		return nil, 0, fmt.Errorf(
			"%w: node header at offset %d needs %d words, have %d",
			ErrTruncatedInput, at, HeaderWords, q.Len())
	}
	val, _ := q.PopFront()
	count, _ := q.PopFront()

	// Every slot occupies at least minSlotWords, so a count larger than this
	// can never be satisfied. Failing here also bounds the allocation below.
	if count > uint64(q.Len()/c.opts.Format.minSlotWords()) {
		return nil, 0, fmt.Errorf(
			"%w: node val=%d at offset %d declares %d children, %d words remain",
			ErrTruncatedInput, val, at, count, q.Len())
	}

	n := tree.New(val)
	if count > 0 {
		n.Children = make([]*tree.Node, 0, count)
	}
	return n, count, nil
}
