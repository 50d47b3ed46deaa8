// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzssx

package lzssx

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrWindowSize is returned by New when the window size is outside [MinWindowSize, MaxWindowSize].
	ErrWindowSize = errors.New("window size out of range")
	// ErrMinMatchLength is returned by New when the minimum match length is outside
	// [MinMatchLengthFloor, MaxMinMatchLength].
	ErrMinMatchLength = errors.New("min match length out of range")
	// ErrOutputTooSmall is returned by the Into variants when the destination buffer
	// cannot hold the full result. The destination contents are unspecified after this error.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrInvalidHeader is returned when the container header is truncated, has a bad
	// magic, carries unknown flags, or declares out-of-range parameters.
	ErrInvalidHeader = errors.New("invalid container header")
	// ErrHeaderMismatch is returned when the parameters echoed in the header disagree
	// with the context used for decompression.
	ErrHeaderMismatch = errors.New("header parameters do not match context")
	// ErrSizeMismatch is returned when the token stream cannot produce exactly the
	// byte count declared in the header (truncated or corrupt stream).
	ErrSizeMismatch = errors.New("decoded size mismatch")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start
	// of the decoded output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrInputTooShort is returned when the stream ends inside the checksum footer.
	ErrInputTooShort = errors.New("not enough data for checksum")
	// ErrChecksumMismatch is returned on strict decompression when the XXH64 content
	// checksum does not match the decoded output.
	ErrChecksumMismatch = errors.New("content checksum mismatch")
	// ErrTrailingData is returned by Decompress when bytes remain after the token
	// stream and checksum footer.
	ErrTrailingData = errors.New("trailing bytes after compressed stream")
	// ErrNilReader is returned by DecompressFromReader when the reader is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrInputTooLarge is returned by DecompressFromReader when the stream exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
