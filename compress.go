package lzssx

import "encoding/binary"

// Compress compresses src into a newly allocated buffer.
// A zero-length input compresses to a zero-length output with no header.
// Two calls on the same input with the same context produce identical bytes.
func (c *LZSS) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	out := make([]byte, 0, MaxCompressedSize(len(src)))

	return c.appendCompressed(out, src), nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. dst must be at least the actual compressed size; size it with
// MaxCompressedSize(len(src)) to be safe for any input. Returns
// ErrOutputTooSmall when dst cannot hold the result; dst contents are
// unspecified after an error.
func (c *LZSS) CompressInto(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	// Encode into dst with its length as the capacity ceiling; append spills
	// into a fresh allocation only when the result does not fit.
	out := c.appendCompressed(dst[:0:len(dst)], src)
	if len(out) > len(dst) {
		return 0, ErrOutputTooSmall
	}

	return len(out), nil
}

// appendCompressed appends the container header, token stream and optional
// checksum footer for src to out.
func (c *LZSS) appendCompressed(out, src []byte) []byte {
	h := header{
		windowSize:     c.windowSize,
		minMatchLength: c.minMatchLength,
		originalSize:   uint64(len(src)),
	}
	if c.checksum {
		h.flags |= flagChecksum
	}

	var hdr [HeaderSize]byte
	putHeader(hdr[:], h)
	out = append(out, hdr[:]...)

	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)
	mf.reset(len(src), c.minMatchLength)

	var flagByte byte
	bitCount := 0
	flagPos := -1

	writeFlags := func() {
		if flagPos >= 0 {
			out[flagPos] = flagByte
		}
		flagByte = 0
		bitCount = 0
	}
	startChunk := func() {
		flagPos = len(out)
		out = append(out, 0)
	}

	startChunk()

	pos := 0
	for pos < len(src) {
		dist, length := mf.findLongestMatch(src, pos, c.windowSize, c.minMatchLength)

		// A match must cover at least as many bytes as its token occupies,
		// or the output would grow past the all-literal capacity bound.
		// Only min match length 2 can report shorter matches.
		if length >= matchTokenSize {
			// Back-reference: flag bit set, LE 16-bit distance, biased length byte.
			flagByte |= 1 << bitCount
			out = append(out, byte(dist), byte(dist>>8), byte(length-c.minMatchLength))

			// Every position covered by the match still enters the index so
			// later searches see the full history.
			for end := pos + length; pos < end; pos++ {
				mf.insert(src, pos)
			}
		} else {
			out = append(out, src[pos])
			mf.insert(src, pos)
			pos++
		}

		bitCount++
		if bitCount == FlagBits {
			writeFlags()
			if pos < len(src) {
				startChunk()
			}
		}
	}

	if bitCount > 0 {
		writeFlags()
	}

	if c.checksum {
		var sum [ChecksumSize]byte
		binary.LittleEndian.PutUint64(sum[:], contentChecksum(src))
		out = append(out, sum[:]...)
	}

	return out
}
