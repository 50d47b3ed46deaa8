package lzssx

import "fmt"

// Parameter bounds enforced at context creation.
const (
	MinWindowSize       = 1     // smallest supported sliding window
	MaxWindowSize       = 65535 // distance must fit the 16-bit field
	MinMatchLengthFloor = 2     // shortest run worth encoding as a match
	MaxMinMatchLength   = 255   // keeps the biased length byte well-formed
)

// Options configures optional codec behavior shared by compression and decompression.
type Options struct {
	// Checksum: if true, Compress appends an XXH64 checksum of the uncompressed
	// bytes after the token stream and records it in the header flags.
	Checksum bool
	// VerifyChecksum: if true, Decompress returns an error on checksum mismatch.
	// If false, a present checksum is skipped without verification (lenient mode).
	VerifyChecksum bool
}

// DefaultOptions returns options for default behavior: checksum on, strict verification.
func DefaultOptions() *Options {
	return &Options{
		Checksum:       true,
		VerifyChecksum: true,
	}
}

// LenientOptions returns options that still write a checksum but do not fail
// decompression on mismatch.
func LenientOptions() *Options {
	return &Options{
		Checksum:       true,
		VerifyChecksum: false,
	}
}

// LZSS is an immutable compression context: the sliding window size and the
// minimum match length both sides of the codec must agree on. A context is
// cheap, holds no per-call state and is safe for concurrent use; all
// match-finder state is scoped to a single Compress or Decompress call.
type LZSS struct {
	windowSize     int
	minMatchLength int
	checksum       bool
	verifyChecksum bool
}

// New creates a context with the given window size (1..65535 bytes of
// history) and minimum match length (2..255). Defaults: checksum on, strict
// verification. Parameters are validated here, never in Compress/Decompress.
func New(windowSize, minMatchLength int) (*LZSS, error) {
	return NewWithOptions(windowSize, minMatchLength, nil)
}

// NewWithOptions creates a context with explicit options. Options nil means DefaultOptions().
func NewWithOptions(windowSize, minMatchLength int, opts *Options) (*LZSS, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if windowSize < MinWindowSize || windowSize > MaxWindowSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrWindowSize, windowSize, MinWindowSize, MaxWindowSize)
	}

	if minMatchLength < MinMatchLengthFloor || minMatchLength > MaxMinMatchLength {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrMinMatchLength, minMatchLength, MinMatchLengthFloor, MaxMinMatchLength)
	}

	return &LZSS{
		windowSize:     windowSize,
		minMatchLength: minMatchLength,
		checksum:       opts.Checksum,
		verifyChecksum: opts.VerifyChecksum,
	}, nil
}

// WindowSize returns the configured sliding window size in bytes.
func (c *LZSS) WindowSize() int { return c.windowSize }

// MinMatchLength returns the configured minimum match length.
func (c *LZSS) MinMatchLength() int { return c.minMatchLength }

// MaxMatchLength returns the longest back-reference this context can encode.
func (c *LZSS) MaxMatchLength() int { return c.minMatchLength + maxLengthBias }
