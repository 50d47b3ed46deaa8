/*
Package lzssx implements LZSS compression with a configurable sliding window
and a self-describing container header.

Container: 16-byte little-endian header = magic "LZS1" (4), flags (1),
window size u16 (2), min match length u8 (1), original size u64 (8).
Token stream: one flag byte per 8 tokens; bit 0 = literal (1 byte),
bit 1 = back-reference (LE 16-bit distance 1..window, 1 byte length-minMatch,
so lengths run minMatch..minMatch+255). The stream self-terminates once the
declared original size has been produced. Flags bit 0 marks an optional
trailing 8-byte XXH64 checksum of the uncompressed bytes.

A zero-length input compresses to a zero-length output with no header, and a
zero-length buffer decompresses to a zero-length output.

Output is deterministic: two conforming encoders with the same window size and
min match length produce byte-identical streams for the same input (longest
match wins, closest source on ties).

Use New(windowSize, minMatchLength) to build a context; parameters are
validated there, not at call time. The context is immutable and safe for
concurrent use. Use GetOriginalSize to query the uncompressed size without
decoding, and MaxCompressedSize to pre-size destination buffers for
CompressInto.

# Examples

Round-trip compress and decompress:

	ctx, err := lzssx.New(4096, 3)
	if err != nil {
		return err
	}
	enc, err := ctx.Compress(data)
	if err != nil {
		return err
	}
	dec, err := ctx.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Compress into a caller-owned buffer:

	dst := make([]byte, lzssx.MaxCompressedSize(len(data)))
	n, err := ctx.CompressInto(data, dst)
	if err != nil {
		return err
	}
	enc := dst[:n]

Query the original size and decompress into a pre-sized buffer:

	out := make([]byte, lzssx.GetOriginalSize(enc))
	dec, err := ctx.DecompressInto(enc, out)

Decompress one container from a stream and keep the position for the next:

	dec, consumed, err := ctx.DecompressFromReader(r, 0)
	if err != nil {
		return err
	}
	_ = consumed

Disable the checksum footer or make verification lenient:

	ctx, err := lzssx.NewWithOptions(4096, 3, &lzssx.Options{Checksum: false})
	ctx, err = lzssx.NewWithOptions(4096, 3, lzssx.LenientOptions())
*/
package lzssx
