package codec

import (
	"testing"

	"github.com/forestrie/go-flattree/tree"
	"github.com/forestrie/go-flattree/treetesting"
	"github.com/stretchr/testify/require"
)

func TestCBOREnvelopeRoundTrip(t *testing.T) {
	cc, err := NewCBORCodec()
	require.NoError(t, err)

	env := Envelope{Format: FormatPlain, Words: treetesting.Fixture1Words()}
	data, err := cc.MarshalEnvelope(env)
	require.NoError(t, err)

	got, err := cc.UnmarshalEnvelope(data)
	require.NoError(t, err)
	require.Equal(t, env, got)

	// deterministic
	again, err := cc.MarshalEnvelope(env)
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestCBOREncodeDecodeTree(t *testing.T) {
	cc, err := NewCBORCodec()
	require.NoError(t, err)

	plain := newTestCodec(t)
	slots := newTestCodec(t, WithFormat(FormatSlots))

	data, err := plain.EncodeCBOR(cc, treetesting.Fixture1())
	require.NoError(t, err)
	got, err := plain.DecodeCBOR(cc, data)
	require.NoError(t, err)
	require.True(t, tree.Equal(treetesting.Fixture1(), got))

	// the envelope format wins over the decoding codec's own
	data, err = slots.EncodeCBOR(cc, treetesting.FixtureEmptySlots())
	require.NoError(t, err)
	got, err = plain.DecodeCBOR(cc, data)
	require.NoError(t, err)
	require.True(t, tree.Equal(treetesting.FixtureEmptySlots(), got))

	_, err = plain.EncodeCBOR(cc, treetesting.FixtureEmptySlots())
	require.ErrorIs(t, err, ErrEmptySlot)
}

func TestCBORDecodeRejectsUnknownFormat(t *testing.T) {
	cc, err := NewCBORCodec()
	require.NoError(t, err)

	data, err := cc.MarshalEnvelope(Envelope{Format: Format(42), Words: []uint64{1, 0}})
	require.NoError(t, err)

	_, err = newTestCodec(t).DecodeCBOR(cc, data)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCBORDecodeLargeTree(t *testing.T) {
	cc, err := NewCBORCodec()
	require.NoError(t, err)

	c := newTestCodec(t)
	root := treetesting.Fan(200000)
	data, err := c.EncodeCBOR(cc, root)
	require.NoError(t, err)

	got, err := c.DecodeCBOR(cc, data)
	require.NoError(t, err)
	require.Equal(t, 200001, tree.Size(got))
}
