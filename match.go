package lzssx

// Hash-chain match finder. Positions are inserted into per-prefix chains
// (newest first) and the search walks a chain until it leaves the window.

const (
	matchHashBits = 15
	matchHashSize = 1 << matchHashBits

	// maxChainLength caps how many candidates one search may visit so highly
	// repetitive inputs cannot degenerate into quadratic chain walks.
	maxChainLength = 4096
)

// matchFinder indexes input positions by a short byte prefix. Chains are
// keyed on 3 bytes, or 2 bytes when the minimum match length is 2 so that
// 2-byte matches stay reachable. State is per-call and recycled via a pool.
type matchFinder struct {
	head   []int32 // chain head per hash bucket, -1 = empty
	prev   []int32 // previous position with the same key, per input position
	keyLen int
}

// reset prepares the finder for one input of inputLen bytes.
func (m *matchFinder) reset(inputLen, minMatchLength int) {
	if m.head == nil {
		m.head = make([]int32, matchHashSize)
	}
	for i := range m.head {
		m.head[i] = -1
	}

	if cap(m.prev) < inputLen {
		m.prev = make([]int32, inputLen)
	} else {
		m.prev = m.prev[:inputLen]
	}

	m.keyLen = 3
	if minMatchLength == 2 {
		m.keyLen = 2
	}
}

// hashKey hashes the keyLen-byte prefix at src[pos:].
func (m *matchFinder) hashKey(src []byte, pos int) uint32 {
	if m.keyLen == 2 {
		key := uint32(src[pos]) | uint32(src[pos+1])<<8
		return (key * 2654435761) >> (32 - matchHashBits)
	}

	key := uint32(src[pos]) | uint32(src[pos+1])<<8 | uint32(src[pos+2])<<16
	return (key * 2654435761) >> (32 - matchHashBits)
}

// insert adds pos to the chain for its prefix. Positions too close to the end
// of the input to form a full key are never match sources and are skipped.
func (m *matchFinder) insert(src []byte, pos int) {
	if pos+m.keyLen > len(src) {
		return
	}

	h := m.hashKey(src, pos)
	m.prev[pos] = m.head[h]
	m.head[h] = int32(pos) // #nosec G115 -- position fits int32 for supported input sizes
}

// findLongestMatch returns the longest match for src[pos:] with its source in
// the last windowSize bytes, or (0, 0) if no match of at least minMatchLength
// exists. Among equally long matches the closest source wins: chains are
// walked newest first and a candidate must be strictly longer to replace the
// current best. A match may overlap the current position (length > distance);
// the decoder replays such copies byte by byte.
func (m *matchFinder) findLongestMatch(src []byte, pos, windowSize, minMatchLength int) (distance, length int) {
	maxLen := len(src) - pos
	if maxLen < minMatchLength {
		return 0, 0
	}
	if maxLen > minMatchLength+maxLengthBias {
		maxLen = minMatchLength + maxLengthBias
	}

	lowest := pos - windowSize
	if lowest < 0 {
		lowest = 0
	}

	best := minMatchLength - 1
	bestPos := -1

	cand := m.head[m.hashKey(src, pos)]
	for chain := 0; cand >= 0 && int(cand) >= lowest && chain < maxChainLength; chain++ {
		c := int(cand)

		// Probe the byte that would extend the current best before the full compare.
		if src[c+best] == src[pos+best] {
			n := matchLen(src, c, pos, maxLen)
			if n > best {
				best = n
				bestPos = c
				if best == maxLen {
					break
				}
			}
		}

		cand = m.prev[c]
	}

	if bestPos < 0 {
		return 0, 0
	}

	return pos - bestPos, best
}

// matchLen counts how far src[ref:] and src[pos:] share a prefix, up to maxLen.
// ref+i may run past pos: that is the self-overlapping case and the bytes it
// reads are still plain input bytes.
func matchLen(src []byte, ref, pos, maxLen int) int {
	n := 0
	for n < maxLen && src[ref+n] == src[pos+n] {
		n++
	}

	return n
}
