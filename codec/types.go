package codec

import (
	"errors"
	"fmt"
)

// Format selects the word layout.
type Format uint8

const (
	// FormatPlain is the (val, count) pre-order layout. It cannot represent
	// empty slots.
	FormatPlain Format = 1
	// FormatSlots adds a presence word before every child slot.
	FormatSlots Format = 2
)

const (
	// HeaderWords is the number of words in a node's (val, count) header.
	HeaderWords = 2

	// minimum words a single child slot can occupy, per format
	minSlotWordsPlain = HeaderWords
	minSlotWordsSlots = 1

	slotEmpty   uint64 = 0
	slotPresent uint64 = 1

	// WordBytes is the width of a word in the fixed byte encoding.
	WordBytes = 8
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatSlots:
		return "slots"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

func (f Format) minSlotWords() int {
	if f == FormatSlots {
		return minSlotWordsSlots
	}
	return minSlotWordsPlain
}

var (
	ErrTruncatedInput = errors.New("codec: input exhausted before the tree was complete")
	ErrTrailingData   = errors.New("codec: words remain after the tree was complete")
	ErrEmptySlot      = errors.New("codec: empty child slot is not representable in the plain format")
	ErrCycle          = errors.New("codec: node is its own ancestor")
	ErrDepthExceeded  = errors.New("codec: tree depth exceeds the configured limit")
	ErrBadPresence    = errors.New("codec: slot presence word must be 0 or 1")
	ErrUnknownFormat  = errors.New("codec: unknown format")
	ErrBadByteLength  = errors.New("codec: byte length is not a multiple of the word size")
	ErrBadVarint      = errors.New("codec: malformed varint")
)
