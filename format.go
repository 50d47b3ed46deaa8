package lzssx

import (
	"encoding/binary"
	"fmt"
)

// Container format constants.
const (
	// headerMagic is "LZS1" as a little-endian uint32 (magic + format version).
	headerMagic = uint32('L') | uint32('Z')<<8 | uint32('S')<<16 | uint32('1')<<24

	// HeaderSize is the fixed width of the container header in bytes:
	// magic u32 | flags u8 | window_size u16 | min_match_length u8 | original_size u64.
	HeaderSize = 16

	// ChecksumSize is the width of the optional XXH64 content checksum footer.
	ChecksumSize = 8

	// FlagBits is the number of slots per flag byte (one flag byte per 8 tokens).
	FlagBits = 8

	// matchTokenSize is the encoded width of a back-reference:
	// LE 16-bit distance + 1-byte biased length.
	matchTokenSize = 3

	// maxLengthBias is the range of the length byte; a match encodes
	// length - min_match_length in one byte, so the longest match is
	// min_match_length + maxLengthBias.
	maxLengthBias = 255
)

// Header flag bits.
const (
	flagChecksum = 1 << 0 // XXH64 content checksum footer follows the token stream
)

const maxInt = int(^uint(0) >> 1)

// header is the decoded container header.
type header struct {
	flags          byte
	windowSize     int
	minMatchLength int
	originalSize   uint64
}

// putHeader writes h into dst[:HeaderSize]. All fields are little-endian.
func putHeader(dst []byte, h header) {
	binary.LittleEndian.PutUint32(dst[0:4], headerMagic)
	dst[4] = h.flags
	binary.LittleEndian.PutUint16(dst[5:7], uint16(h.windowSize)) // #nosec G115 -- validated at context creation
	dst[7] = byte(h.minMatchLength)
	binary.LittleEndian.PutUint64(dst[8:16], h.originalSize)
}

// parseHeader reads and validates the fixed container header from src.
func parseHeader(src []byte) (header, error) {
	if len(src) < HeaderSize {
		return header{}, fmt.Errorf("%w: %d bytes, header is %d", ErrInvalidHeader, len(src), HeaderSize)
	}

	if magic := binary.LittleEndian.Uint32(src[0:4]); magic != headerMagic {
		return header{}, fmt.Errorf("%w: bad magic 0x%08x", ErrInvalidHeader, magic)
	}

	h := header{
		flags:          src[4],
		windowSize:     int(binary.LittleEndian.Uint16(src[5:7])),
		minMatchLength: int(src[7]),
		originalSize:   binary.LittleEndian.Uint64(src[8:16]),
	}

	if h.flags&^flagChecksum != 0 {
		return header{}, fmt.Errorf("%w: unknown flags 0x%02x", ErrInvalidHeader, h.flags)
	}

	if h.windowSize < MinWindowSize {
		return header{}, fmt.Errorf("%w: window size %d", ErrInvalidHeader, h.windowSize)
	}

	if h.minMatchLength < MinMatchLengthFloor {
		return header{}, fmt.Errorf("%w: min match length %d", ErrInvalidHeader, h.minMatchLength)
	}

	if h.originalSize > uint64(maxInt) {
		return header{}, fmt.Errorf("%w: original size %d overflows int", ErrInvalidHeader, h.originalSize)
	}

	return h, nil
}

// GetOriginalSize returns the uncompressed size declared in the container
// header without decoding the token stream. It returns 0 when compressed is
// empty (a zero-length stream decodes to zero bytes) or when the header is
// truncated or carries a bad magic.
func GetOriginalSize(compressed []byte) uint64 {
	if len(compressed) < HeaderSize {
		return 0
	}

	if binary.LittleEndian.Uint32(compressed[0:4]) != headerMagic {
		return 0
	}

	return binary.LittleEndian.Uint64(compressed[8:16])
}

// HeaderParams returns the window size and minimum match length echoed in
// the container header, so a decoder can be constructed without out-of-band
// parameter knowledge.
func HeaderParams(compressed []byte) (windowSize, minMatchLength int, err error) {
	h, err := parseHeader(compressed)
	if err != nil {
		return 0, 0, err
	}

	return h.windowSize, h.minMatchLength, nil
}

// MaxCompressedSize returns an upper bound on the compressed size of any
// input of inputSize bytes: header, one flag byte per 8 tokens with every
// token a literal, and the checksum footer. Compress never produces more
// than this, so the bound is safe for sizing CompressInto destinations.
func MaxCompressedSize(inputSize int) int {
	if inputSize <= 0 {
		return 0
	}

	return HeaderSize + (inputSize+FlagBits-1)/FlagBits + inputSize + ChecksumSize
}
