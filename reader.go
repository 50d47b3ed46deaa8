package lzssx

import "io"

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader, counts the bytes read and
// optionally enforces an upper bound on them.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
	limit int64         // Maximum bytes to read; 0 = no limit.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the reader, increments the count and enforces the limit.
func (r *countingByteReader) ReadByte() (byte, error) {
	if r.limit > 0 && r.count >= r.limit {
		return 0, ErrInputTooLarge
	}

	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
