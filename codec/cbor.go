package codec

import (
	"fmt"

	"github.com/forestrie/go-flattree/tree"
	"github.com/fxamacker/cbor/v2"
)

// cbor limits array lengths to 128k elements by default, well short of a
// large tree's word count.
const cborMaxArrayElements = 2147483647

// Envelope carries an encoded word sequence together with the format needed
// to read it back.
type Envelope struct {
	Format Format   `cbor:"1,keyasint"`
	Words  []uint64 `cbor:"2,keyasint"`
}

// CBORCodec marshals Envelopes as deterministic CBOR.
type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCBORCodec() (CBORCodec, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	decMode, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: cborMaxArrayElements,
	}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{encMode: encMode, decMode: decMode}, nil
}

func (cc CBORCodec) MarshalEnvelope(env Envelope) ([]byte, error) {
	return cc.encMode.Marshal(env)
}

func (cc CBORCodec) UnmarshalEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := cc.decMode.Unmarshal(data, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// EncodeCBOR serializes root and wraps the words in a CBOR Envelope.
func (c *Codec) EncodeCBOR(cc CBORCodec, root *tree.Node) ([]byte, error) {
	words, err := c.Serialize(root)
	if err != nil {
		return nil, err
	}
	return cc.MarshalEnvelope(Envelope{Format: c.opts.Format, Words: words})
}

// DecodeCBOR reads an Envelope and decodes its words in the format the
// envelope names, which need not be c's own. c's other options still apply.
// The words must hold exactly one tree.
func (c *Codec) DecodeCBOR(cc CBORCodec, data []byte) (*tree.Node, error) {
	env, err := cc.UnmarshalEnvelope(data)
	if err != nil {
		return nil, err
	}
	opts := c.opts
	opts.Format = env.Format
	dc, err := New(func(o *Options) { *o = opts })
	if err != nil {
		return nil, fmt.Errorf("cbor envelope: %w", err)
	}
	return dc.Unmarshal(env.Words)
}
