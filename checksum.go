package lzssx

import "github.com/cespare/xxhash/v2"

// contentChecksum returns the XXH64 digest of the uncompressed bytes.
// It is stored little-endian in the optional footer after the token stream.
func contentChecksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
