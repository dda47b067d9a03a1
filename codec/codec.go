package codec

import (
	"fmt"

	"github.com/forestrie/go-flattree/tree"
)

// Codec serializes and deserializes trees in a single, fixed Format. A Codec
// is not modified after New and may be shared between goroutines.
type Codec struct {
	opts Options
}

var defaultCodec = Codec{opts: Options{Format: FormatPlain}}

func New(opts ...Option) (*Codec, error) {
	c := &Codec{opts: Options{Format: FormatPlain}}
	for _, o := range opts {
		o(&c.opts)
	}
	if c.opts.Format != FormatPlain && c.opts.Format != FormatSlots {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, c.opts.Format)
	}
	if c.opts.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrDepthExceeded, c.opts.MaxDepth)
	}
	return c, nil
}

func (c *Codec) Format() Format {
	return c.opts.Format
}

// Serialize encodes root with the plain format. See Codec.Serialize.
func Serialize(root *tree.Node) ([]uint64, error) {
	return defaultCodec.Serialize(root)
}

// Deserialize decodes one plain format tree from the front of q. See
// Codec.Deserialize.
func Deserialize(q *Queue) (*tree.Node, error) {
	return defaultCodec.Deserialize(q)
}

// Unmarshal decodes a plain format tree that must occupy all of words.
func Unmarshal(words []uint64) (*tree.Node, error) {
	return defaultCodec.Unmarshal(words)
}

// Unmarshal decodes a tree that must occupy all of words.
func (c *Codec) Unmarshal(words []uint64) (*tree.Node, error) {
	q := NewQueue(words)
	root, err := c.Deserialize(q)
	if err != nil {
		return nil, err
	}
	if q.Len() != 0 {
		return nil, fmt.Errorf(
			"%w: %d of %d words unused", ErrTrailingData, q.Len(), len(words))
	}
	return root, nil
}

func (c *Codec) checkDepth(depth int) error {
	if c.opts.MaxDepth > 0 && depth > c.opts.MaxDepth {
		return fmt.Errorf("%w: depth=%d, max=%d", ErrDepthExceeded, depth, c.opts.MaxDepth)
	}
	return nil
}

func (c *Codec) debugf(format string, args ...any) {
	if c.opts.Log == nil {
		return
	}
	c.opts.Log.Debugf(format, args...)
}
