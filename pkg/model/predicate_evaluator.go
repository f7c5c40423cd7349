package model

type predicateEvaluator interface {
	// Checks whether the section at position section1 of discipline1 overlaps the section at position section2 of discipline2
	Conflicts(discipline1, section1, discipline2, section2 uint64) bool

	// Checks whether the section at position section of discipline overlaps any of the sections chosen so far in the permutation
	ConflictsWithChosen(permutation []uint64, discipline, section uint64) bool
}
