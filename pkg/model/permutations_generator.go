package model

type permutationGenerator interface {
	// Builds the permutations (one value per domain) that hold every constraint, stopping once limit permutations were found.
	// All the constraints must take into account that if the value of permutation[i] (for all feasible i's) is math.MaxUint64
	// then the permutation is not ready to be evaluated if this evaluation involves permutation[i]
	//
	// Example:
	//
	//	generator := newPermutationGenerator([]uint64{2, 3, 1})
	//
	//	permutations := generator.ConstrainedPermutations([]func(permutation []uint64) bool{
	//				func(permutation []uint64) bool {
	//	       		// Verify "permutation[1] == math.MaxUint64", since the predicate "permutation[1] == 1" relies in this index
	//					return permutation[1] == math.MaxUint64 || permutation[1] == 1
	//				},
	//			}, 10)
	ConstrainedPermutations(constraints []func(permutation []uint64) bool, limit uint64) [][]uint64
}

func newPermutationGenerator(domains []uint64) permutationGenerator {
	domainsCopy := make([]uint64, len(domains))
	copy(domainsCopy, domains)
	return &permutationGeneratorImplementation{domains: domainsCopy}
}
