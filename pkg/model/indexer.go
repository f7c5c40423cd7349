package model

import "math/bits"

// indexer interface is design to give a unique index to a choice of one section position per discipline and vice versa
type indexer interface {
	// Returns a unique index to a choice of section positions (one position per discipline)
	Index(positions []uint64) uint64
	// Returns the section positions from a unique index
	Attributes(index uint64) []uint64
	// Reports whether every index fits in a uint64. Index and Attributes are meaningless otherwise
	Fits() bool
}

// domains[i] is the number of sections offered by the i-th discipline
func newIndexer(domains []uint64) indexer {
	return newIndexerImplementation(domains)
}

func newIndexerImplementation(domains []uint64) *indexerImplementation {
	indexer := &indexerImplementation{
		domains: make([]uint64, len(domains)),
		weights: make([]uint64, len(domains)),
		size:    1,
		fits:    true,
	}
	copy(indexer.domains, domains)

	for i, domain := range indexer.domains {
		indexer.weights[i] = indexer.size
		high, product := bits.Mul64(indexer.size, domain)
		if high != 0 {
			// The largest index is the product of every domain, so it must stay below 2^64
			indexer.fits = false
			indexer.size = 0
			break
		}
		indexer.size = product
	}
	return indexer
}
