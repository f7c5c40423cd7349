package model

import "math"

type predicateEvaluatorStandard struct {
	offsets   []uint64 // Position of the first section of each discipline in the flat section arena
	conflicts [][]bool // Conflict matrix over the flat section arena
}

func newPredicateEvaluator(disciplines []Discipline) predicateEvaluator {
	evaluator := predicateEvaluatorStandard{
		offsets: make([]uint64, len(disciplines)),
	}

	//** Flatten sections
	sections := make([]ClassSection, 0)
	owners := make([]int, 0) // Discipline position of each flat section
	for i, discipline := range disciplines {
		evaluator.offsets[i] = uint64(len(sections))
		for _, section := range discipline.Sections {
			sections = append(sections, section)
			owners = append(owners, i)
		}
	}

	//** Fill conflict matrix. Sections of the same discipline are alternatives, hence never compared
	evaluator.conflicts = make([][]bool, len(sections))
	for i := range sections {
		evaluator.conflicts[i] = make([]bool, len(sections))
	}
	for i := range sections {
		for j := i + 1; j < len(sections); j++ {
			if owners[i] == owners[j] {
				continue
			}
			if SectionsConflict(sections[i], sections[j]) {
				evaluator.conflicts[i][j] = true
				evaluator.conflicts[j][i] = true
			}
		}
	}

	return &evaluator
}

func (evaluator *predicateEvaluatorStandard) Conflicts(discipline1, section1, discipline2, section2 uint64) bool {
	return evaluator.conflicts[evaluator.offsets[discipline1]+section1][evaluator.offsets[discipline2]+section2]
}

func (evaluator *predicateEvaluatorStandard) ConflictsWithChosen(permutation []uint64, discipline, section uint64) bool {
	for other, chosen := range permutation {
		if uint64(other) == discipline || chosen == math.MaxUint64 {
			continue
		}
		if evaluator.Conflicts(uint64(other), chosen, discipline, section) {
			return true
		}
	}
	return false
}
