package model

import "math"

type permutationGeneratorImplementation struct {
	domains []uint64
}

func (generator *permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(permutation []uint64) bool, limit uint64) [][]uint64 {
	permutations := make([][]uint64, 0)
	if len(generator.domains) == 0 || limit == 0 {
		return permutations
	}

	permutation := make([]uint64, len(generator.domains))
	for i := range permutation {
		permutation[i] = math.MaxUint64
	}

	generator.constrainedPermutations(constraints, 0, permutation, limit, &permutations)
	return permutations
}

func (generator *permutationGeneratorImplementation) constrainedPermutations(
	constraints []func(permutation []uint64) bool,
	currentDomain uint64,
	permutation []uint64,
	limit uint64,
	permutations *[][]uint64) {

	if currentDomain >= uint64(len(generator.domains)) {
		permutationCopy := make([]uint64, len(permutation))
		copy(permutationCopy, permutation)
		*permutations = append(*permutations, permutationCopy)
		return
	}

	for i := uint64(0); i < generator.domains[currentDomain]; i++ {
		// Stop as soon as the limit is reached
		if uint64(len(*permutations)) >= limit {
			break
		}

		permutation[currentDomain] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(permutation) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		generator.constrainedPermutations(constraints, currentDomain+1, permutation, limit, permutations)
	}

	permutation[currentDomain] = math.MaxUint64
}
