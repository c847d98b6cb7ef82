package batch

import "github.com/bits-and-blooms/bloom/v3"

// falsePositiveRate sizes the Bloom filter.
const falsePositiveRate = 0.001

// seenFilter remembers keys in a Bloom filter. A false positive makes a new
// key look seen.
type seenFilter struct {
	filter *bloom.BloomFilter
}

func newSeenFilter(n uint) *seenFilter {
	if n == 0 {
		n = 1
	}
	return &seenFilter{filter: bloom.NewWithEstimates(n, falsePositiveRate)}
}

// Add records key and reports whether it was new.
func (f *seenFilter) Add(key string) bool {
	return !f.filter.TestOrAddString(key)
}
