package lzssx

import "sync"

// matchFinderPool recycles match-finder state between Compress calls.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder acquires a match finder from the pool.
func acquireMatchFinder() *matchFinder {
	return matchFinderPool.Get().(*matchFinder)
}

// releaseMatchFinder releases a match finder to the pool.
func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}

	matchFinderPool.Put(m)
}
