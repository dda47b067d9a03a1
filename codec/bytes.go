package codec

import (
	"encoding/binary"
	"fmt"
	"hash"
)

// EncodeBytes lays words out as consecutive 8 byte big-endian records.
func EncodeBytes(words []uint64) []byte {
	out := make([]byte, len(words)*WordBytes)
	for i, w := range words {
		writeU64BE(out[i*WordBytes:], w)
	}
	return out
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(data []byte) ([]uint64, error) {
	if len(data)%WordBytes != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBadByteLength, len(data))
	}
	words := make([]uint64, len(data)/WordBytes)
	for i := range words {
		words[i] = readU64BE(data[i*WordBytes:])
	}
	return words, nil
}

// EncodeVarint lays words out as unsigned LEB128 varints. Most trees have
// small labels and counts, so this is usually far denser than EncodeBytes.
func EncodeVarint(words []uint64) []byte {
	out := make([]byte, 0, len(words))
	for _, w := range words {
		out = binary.AppendUvarint(out, w)
	}
	return out
}

// DecodeVarint is the inverse of EncodeVarint.
func DecodeVarint(data []byte) ([]uint64, error) {
	words := make([]uint64, 0, len(data)/2)
	for off := 0; off < len(data); {
		w, n := binary.Uvarint(data[off:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: at byte offset %d", ErrBadVarint, off)
		}
		words = append(words, w)
		off += n
	}
	return words, nil
}

// Digest returns the hasher's sum over the big-endian encoding of words. Two
// trees have equal digests under the same format exactly when their
// encodings are equal, up to the hasher's collision resistance.
func Digest(hasher hash.Hash, words []uint64) []byte {
	hasher.Reset()
	for _, w := range words {
		HashWriteUint64(hasher, w)
	}
	return hasher.Sum(nil)
}

// HashWriteUint64 writes a uint64 to a hasher in big-endian layout.
func HashWriteUint64(hasher hash.Hash, value uint64) {
	var b [WordBytes]byte
	binary.BigEndian.PutUint64(b[:], value)
	_, _ = hasher.Write(b[:])
}

func readU64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }
func writeU64BE(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }
