package lzssx

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// noChecksum returns a context without the checksum footer so tests can pin
// the exact token stream bytes.
func noChecksum(t *testing.T, windowSize, minMatchLength int) *LZSS {
	t.Helper()
	ctx, err := NewWithOptions(windowSize, minMatchLength, &Options{Checksum: false})
	if err != nil {
		t.Fatal(err)
	}

	return ctx
}

func TestRoundTripGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := make([]byte, 4096)
	rng.Read(random)

	inputs := map[string][]byte{
		"empty":      nil,
		"single":     {0x7F},
		"repetitive": bytes.Repeat([]byte{'a'}, 1000),
		"text":       bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 64),
		"random":     random,
	}

	for _, windowSize := range []int{1, 2, 4096, 65535} {
		for _, minMatch := range []int{2, 3, 8} {
			ctx, err := New(windowSize, minMatch)
			if err != nil {
				t.Fatal(err)
			}

			for name, input := range inputs {
				t.Run(fmt.Sprintf("w=%d/m=%d/%s", windowSize, minMatch, name), func(t *testing.T) {
					enc, err := ctx.Compress(input)
					if err != nil {
						t.Fatal(err)
					}

					if len(enc) > MaxCompressedSize(len(input)) {
						t.Fatalf("compressed %d bytes exceeds bound %d", len(enc), MaxCompressedSize(len(input)))
					}

					if got := GetOriginalSize(enc); got != uint64(len(input)) {
						t.Fatalf("GetOriginalSize: got %d, want %d", got, len(input))
					}

					dec, err := ctx.Decompress(enc)
					if err != nil {
						t.Fatal(err)
					}

					if !bytes.Equal(input, dec) {
						t.Fatalf("round trip mismatch: in=%d out=%d", len(input), len(dec))
					}
				})
			}
		}
	}
}

func TestExampleABABStream(t *testing.T) {
	// "ABABABABAB" with window 4096 and min match 3 must encode as two
	// literals followed by one back-reference (distance 2, length 8).
	ctx := noChecksum(t, 4096, 3)

	input := []byte("ABABABABAB")
	enc, err := ctx.Compress(input)
	if err != nil {
		t.Fatal(err)
	}

	// Flags 0x04: bits 0,1 literal, bit 2 match. Then literals 'A' 'B' and
	// one match: distance 2 little-endian, length byte 8-3.
	wantTokens := []byte{0x04, 'A', 'B', 0x02, 0x00, 0x05}

	if len(enc) != HeaderSize+len(wantTokens) {
		t.Fatalf("compressed length: got %d, want %d", len(enc), HeaderSize+len(wantTokens))
	}

	if !bytes.Equal(enc[HeaderSize:], wantTokens) {
		t.Fatalf("token stream: got %x, want %x", enc[HeaderSize:], wantTokens)
	}

	if got := GetOriginalSize(enc); got != 10 {
		t.Fatalf("GetOriginalSize: got %d, want 10", got)
	}

	dec, err := ctx.Decompress(enc)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(input, dec) {
		t.Fatalf("got %q", dec)
	}
}

func TestSelfOverlapRun(t *testing.T) {
	// A run of one repeated byte encodes as a literal plus a single
	// distance-1 match covering the rest; the decoder must replay it
	// byte-by-byte since length exceeds distance.
	ctx := noChecksum(t, 4096, 3)

	input := bytes.Repeat([]byte{'a'}, 10)
	enc, err := ctx.Compress(input)
	if err != nil {
		t.Fatal(err)
	}

	// Flags 0x02: bit 0 literal, bit 1 match. Literal 'a' then a match with
	// distance 1 and length byte 9-3.
	wantTokens := []byte{0x02, 'a', 0x01, 0x00, 0x06}

	if !bytes.Equal(enc[HeaderSize:], wantTokens) {
		t.Fatalf("token stream: got %x, want %x", enc[HeaderSize:], wantTokens)
	}

	dec, err := ctx.Decompress(enc)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(input, dec) {
		t.Fatalf("overlap replay mismatch: %q", dec)
	}
}

func TestSelfOverlapLongRuns(t *testing.T) {
	// Runs far longer than the window still round-trip: each match source
	// stays within distance 1 of the write position.
	for _, n := range []int{5, 300, 5000, 70000} {
		ctx, err := New(4096, 3)
		if err != nil {
			t.Fatal(err)
		}

		input := bytes.Repeat([]byte{0xAB}, n)
		enc, err := ctx.Compress(input)
		if err != nil {
			t.Fatal(err)
		}

		dec, err := ctx.Decompress(enc)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		if !bytes.Equal(input, dec) {
			t.Fatalf("n=%d: round trip mismatch", n)
		}
	}
}

func TestCapacityBoundMinMatchTwo(t *testing.T) {
	// With min match 2 the finder can report 2-byte matches whose token is
	// 3 bytes; those must stay literal or match-rich random input grows
	// past the all-literal bound.
	ctx, err := New(4096, 2)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	input := make([]byte, 4096)
	rng.Read(input)

	enc, err := ctx.Compress(input)
	if err != nil {
		t.Fatal(err)
	}

	if bound := MaxCompressedSize(len(input)); len(enc) > bound {
		t.Fatalf("compressed %d bytes exceeds bound %d", len(enc), bound)
	}

	dec, err := ctx.Decompress(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, dec) {
		t.Fatal("round trip mismatch")
	}
}

func TestShortMatchStaysLiteral(t *testing.T) {
	ctx := noChecksum(t, 4096, 2)

	// The only repeat of "ab" is 2 bytes long: encoding it would spend a
	// 3-byte token on 2 bytes, so all five bytes stay literal.
	enc, err := ctx.Compress([]byte("abXab"))
	if err != nil {
		t.Fatal(err)
	}

	wantLiteral := []byte{0x00, 'a', 'b', 'X', 'a', 'b'}
	if !bytes.Equal(enc[HeaderSize:], wantLiteral) {
		t.Fatalf("token stream: got %x, want %x", enc[HeaderSize:], wantLiteral)
	}

	// A 3-byte repeat pays for its token and is still encoded as a match:
	// flags 0x10, four literals, then distance 4 LE and length byte 3-2.
	enc, err = ctx.Compress([]byte("abcXabc"))
	if err != nil {
		t.Fatal(err)
	}

	wantMatch := []byte{0x10, 'a', 'b', 'c', 'X', 0x04, 0x00, 0x01}
	if !bytes.Equal(enc[HeaderSize:], wantMatch) {
		t.Fatalf("token stream: got %x, want %x", enc[HeaderSize:], wantMatch)
	}
}

func TestWindowBoundary(t *testing.T) {
	// The only repeat of "abc" sits exactly window-size bytes back. With
	// window 8 it is a valid source; with window 7 it is one byte out of
	// reach and the tail must stay literal.
	input := []byte("abcdefghabc")

	in := noChecksum(t, 8, 3)
	enc, err := in.Compress(input)
	if err != nil {
		t.Fatal(err)
	}

	// First group: flag 0x00 then 8 literals. Second group: flag 0x01 then a
	// match with distance 8 little-endian and length byte 3-3.
	wantIn := []byte{
		0x00, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h',
		0x01, 0x08, 0x00, 0x00,
	}
	if !bytes.Equal(enc[HeaderSize:], wantIn) {
		t.Fatalf("window=8 token stream: got %x, want %x", enc[HeaderSize:], wantIn)
	}

	dec, err := in.Decompress(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, dec) {
		t.Fatalf("window=8 round trip: %q", dec)
	}

	out := noChecksum(t, 7, 3)
	enc, err = out.Compress(input)
	if err != nil {
		t.Fatal(err)
	}

	wantOut := []byte{
		0x00, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h',
		0x00, 'a', 'b', 'c',
	}
	if !bytes.Equal(enc[HeaderSize:], wantOut) {
		t.Fatalf("window=7 token stream: got %x, want %x", enc[HeaderSize:], wantOut)
	}
}

func TestDeterminism(t *testing.T) {
	ctx, err := New(4096, 3)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(7))
	input := make([]byte, 64*1024)
	rng.Read(input)

	first, err := ctx.Compress(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ctx.Compress(input)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("two compress calls produced different bytes")
	}
}

func TestEmptyInput(t *testing.T) {
	ctx, err := New(4096, 3)
	if err != nil {
		t.Fatal(err)
	}

	enc, err := ctx.Compress(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 0 {
		t.Fatalf("empty input compressed to %d bytes", len(enc))
	}

	dec, err := ctx.Decompress(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 0 {
		t.Fatalf("empty input decompressed to %d bytes", len(dec))
	}

	if got := GetOriginalSize(nil); got != 0 {
		t.Fatalf("GetOriginalSize(nil) = %d", got)
	}

	if got := MaxCompressedSize(0); got != 0 {
		t.Fatalf("MaxCompressedSize(0) = %d", got)
	}
}

func TestTruncatedHeader(t *testing.T) {
	ctx, err := New(4096, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{1, 4, HeaderSize - 1} {
		_, err := ctx.Decompress(make([]byte, n))
		if !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("len=%d: want ErrInvalidHeader, got %v", n, err)
		}
	}
}
