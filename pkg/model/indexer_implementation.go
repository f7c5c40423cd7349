package model

type indexerImplementation struct {
	domains []uint64
	weights []uint64 // weights[i] is the product of the domains before i
	size    uint64   // Amount of distinct indices, i.e. the product of every domain; 0 when it overflows
	fits    bool
}

// Index reads the positions as a mixed-radix number where the first discipline is the least significant digit.
// Indices start at 1 so that 0 can stand for "no combination"
func (indexer *indexerImplementation) Index(positions []uint64) uint64 {
	index := uint64(0)
	for i, position := range positions {
		index += indexer.weights[i] * position
	}
	return index + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) []uint64 {
	index = index - 1
	positions := make([]uint64, len(indexer.domains))
	for i, domain := range indexer.domains {
		positions[i] = index % domain
		index = index / domain
	}
	return positions
}

func (indexer *indexerImplementation) Fits() bool {
	return indexer.fits
}
