package model

type conflictDetectorImplementation struct{}

type selectedEntry struct {
	discipline int64
	section    ClassSection
}

func (detector *conflictDetectorImplementation) Detect(states []DisciplineState) ConflictReport {
	report := ConflictReport{
		Conflicts:           make([]Conflict, 0),
		ConflictingSections: make(map[int64]bool),
	}

	//** Collect selected sections of visible disciplines
	entries := make([]selectedEntry, 0, len(states))
	for _, state := range states {
		if !state.Visible {
			continue
		}
		if section, ok := state.SelectedSection(); ok {
			entries = append(entries, selectedEntry{discipline: state.Discipline.Id, section: section})
		}
	}

	//** Compare every pair once, keeping list order inside the pair
	for i := range len(entries) {
		for j := i + 1; j < len(entries); j++ {
			entry1, entry2 := entries[i], entries[j]

			overlaps := overlappingSlots(entry1.section, entry2.section)
			if len(overlaps) == 0 {
				continue
			}

			report.Conflicts = append(report.Conflicts, Conflict{
				A:        entry1.discipline,
				B:        entry2.discipline,
				SectionA: entry1.section.Id,
				SectionB: entry2.section.Id,
				Slots:    overlaps,
			})
			report.ConflictingSections[entry1.section.Id] = true
			report.ConflictingSections[entry2.section.Id] = true
		}
	}

	return report
}
