package model

import (
	"github.com/samber/lo"
)

// Verify re-checks a combination against the planning states it was generated from
func Verify(combination Combination, states []DisciplineState) bool {
	visible := visibleStates(states)

	//** One section per visible discipline, in list order
	if len(visible) == 0 || len(combination.Sections) != len(visible) {
		return false
	}

	positions := make([]uint64, len(visible))
	domains := make([]uint64, len(visible))
	for i, state := range visible {
		section := combination.Sections[i]
		// Check that:
		// - Section belongs to the discipline at the same position
		// - Section is one of the sections offered by the discipline
		if section.Discipline != state.Discipline.Id {
			return false
		}
		_, position, ok := lo.FindIndexOf(state.Discipline.Sections, func(offered ClassSection) bool {
			return offered.Id == section.Id
		})
		if !ok {
			return false
		}
		positions[i] = uint64(position)
		domains[i] = uint64(len(state.Discipline.Sections))
	}

	//** Pairwise conflict-free
	for i := range len(combination.Sections) - 1 {
		for j := i + 1; j < len(combination.Sections); j++ {
			if SectionsConflict(combination.Sections[i], combination.Sections[j]) {
				return false
			}
		}
	}

	//** Id and credits consistency
	if sumCredits(visible) != combination.Credits || combination.Id == 0 {
		return false
	}
	// Discovery-order ids carry no positions to check
	indexer := newIndexer(domains)
	return !indexer.Fits() || indexer.Index(positions) == combination.Id
}

// DecodeCombination rebuilds a combination from its id. The second value is false when the id does not name a
// conflict-free combination of the visible disciplines, or when the section counts are too large for positional ids
func DecodeCombination(states []DisciplineState, id uint64) (Combination, bool) {
	visible := visibleStates(states)
	if len(visible) == 0 || id == 0 {
		return Combination{}, false
	}

	domains := lo.Map(visible, func(state DisciplineState, _ int) uint64 { return uint64(len(state.Discipline.Sections)) })
	if lo.Contains(domains, 0) {
		return Combination{}, false
	}

	indexer := newIndexerImplementation(domains)
	if !indexer.Fits() || id > indexer.size {
		return Combination{}, false
	}

	positions := indexer.Attributes(id)
	combination := Combination{
		Id:       id,
		Sections: make([]ClassSection, len(visible)),
		Credits:  sumCredits(visible),
	}
	for i, position := range positions {
		combination.Sections[i] = visible[i].Discipline.Sections[position]
	}

	return combination, Verify(combination, states)
}
