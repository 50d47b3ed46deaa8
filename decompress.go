package lzssx

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses a complete container from src into a new buffer of
// the size declared in the header. A zero-length src yields a zero-length
// output. Bytes remaining after the token stream and checksum footer are an
// error (ErrTrailingData).
func (c *LZSS) Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	reader := &sliceByteReader{data: src}
	out, err := c.decompressCore(reader, nil)
	if err != nil {
		return nil, err
	}

	if reader.pos != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, reader.pos, len(src))
	}

	return out, nil
}

// DecompressInto decompresses src into the caller-owned dst and returns the
// decoded slice (dst truncated to the declared original size). dst must be at
// least GetOriginalSize(src) bytes; otherwise ErrOutputTooSmall is returned
// and dst contents are unspecified.
func (c *LZSS) DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	reader := &sliceByteReader{data: src}
	out, err := c.decompressCore(reader, dst)
	if err != nil {
		return nil, err
	}

	if reader.pos != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, reader.pos, len(src))
	}

	return out, nil
}

// DecompressFromReader decompresses one container from r and returns the
// decoded bytes and the number of input bytes consumed. The stream may
// continue past the container (no trailing-data check). maxInputSize limits
// how many bytes may be read; 0 means no limit.
func (c *LZSS) DecompressFromReader(r io.Reader, maxInputSize int) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	reader := &countingByteReader{base: byteReader, limit: int64(maxInputSize)}
	out, err := c.decompressCore(reader, nil)
	if err != nil {
		return nil, reader.count, err
	}

	return out, reader.count, nil
}

// decompressCore reads the header, replays the token stream and verifies the
// checksum footer when present. dst nil means allocate the output; otherwise
// dst must hold at least the declared original size.
func (c *LZSS) decompressCore(r io.ByteReader, dst []byte) ([]byte, error) {
	// Read a byte from the reader.
	// If the reader returns an EOF error, return the error passed as eofErr.
	// Otherwise, return the error from the reader.
	readByte := func(eofErr error) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, eofErr
			}

			return 0, err
		}

		return b, nil
	}

	var hdr [HeaderSize]byte
	for i := range hdr {
		b, err := readByte(fmt.Errorf("%w: truncated at byte %d of %d", ErrInvalidHeader, i, HeaderSize))
		if err != nil {
			return nil, err
		}
		hdr[i] = b
	}

	h, err := parseHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	if h.windowSize != c.windowSize || h.minMatchLength != c.minMatchLength {
		return nil, fmt.Errorf("%w: header window=%d minMatch=%d, context window=%d minMatch=%d",
			ErrHeaderMismatch, h.windowSize, h.minMatchLength, c.windowSize, c.minMatchLength)
	}

	outLen := int(h.originalSize) // #nosec G115 -- bounded by maxInt in parseHeader
	var out []byte
	if dst == nil {
		out = make([]byte, outLen)
	} else {
		if len(dst) < outLen {
			return nil, fmt.Errorf("%w: need %d, have %d", ErrOutputTooSmall, outLen, len(dst))
		}
		out = dst[:outLen]
	}

	eofInStream := fmt.Errorf("%w: token stream ended early", ErrSizeMismatch)

	pos := 0
	for pos < outLen {
		flagByte, err := readByte(eofInStream)
		if err != nil {
			return nil, err
		}

		for bit := 0; bit < FlagBits && pos < outLen; bit++ {
			// Bit set = back-reference, clear = literal.
			if (flagByte>>bit)&1 == 1 {
				lo, err := readByte(eofInStream)
				if err != nil {
					return nil, err
				}
				hi, err := readByte(eofInStream)
				if err != nil {
					return nil, err
				}
				lenByte, err := readByte(eofInStream)
				if err != nil {
					return nil, err
				}

				distance := int(lo) | int(hi)<<8
				length := int(lenByte) + h.minMatchLength

				if distance == 0 || distance > pos {
					return nil, fmt.Errorf("%w: distance=%d produced=%d", ErrLookBehindUnderrun, distance, pos)
				}

				if pos+length > outLen {
					return nil, fmt.Errorf("%w: match overruns declared size %d", ErrSizeMismatch, outLen)
				}

				copyBackRef(out, pos, distance, length)
				pos += length
			} else {
				b, err := readByte(eofInStream)
				if err != nil {
					return nil, err
				}

				out[pos] = b
				pos++
			}
		}
	}

	if h.flags&flagChecksum != 0 {
		var sum [ChecksumSize]byte
		for i := range sum {
			b, err := readByte(ErrInputTooShort)
			if err != nil {
				return nil, err
			}
			sum[i] = b
		}

		if c.verifyChecksum {
			stored := binary.LittleEndian.Uint64(sum[:])
			if got := contentChecksum(out); got != stored {
				return nil, fmt.Errorf("%w: got=0x%016x want=0x%016x", ErrChecksumMismatch, got, stored)
			}
		}
	}

	return out, nil
}

// copyBackRef copies length bytes from out[pos-distance:] to out[pos:].
// When distance < length the regions overlap and each written byte must be
// visible to the next read (RLE-like), so the copy is byte-by-byte; the
// built-in copy does not handle src preceding dst.
func copyBackRef(out []byte, pos, distance, length int) {
	ref := pos - distance
	if distance >= length {
		copy(out[pos:pos+length], out[ref:ref+length])
		return
	}

	for i := 0; i < length; i++ {
		out[pos+i] = out[ref+i]
	}
}
