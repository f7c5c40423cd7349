package model

// ConflictDetector reports every pair of disciplines whose currently selected sections overlap
type ConflictDetector interface {
	// Detect never mutates the states. Hidden disciplines and disciplines without a selection are ignored
	Detect(states []DisciplineState) ConflictReport
}

type Conflict struct {
	A        int64      `json:"a"` // Discipline listed first
	B        int64      `json:"b"`
	SectionA int64      `json:"section_a"`
	SectionB int64      `json:"section_b"`
	Slots    []TimeSlot `json:"slots"` // Exact overlapping intervals
}

type ConflictReport struct {
	Conflicts           []Conflict
	ConflictingSections map[int64]bool
}

func (report ConflictReport) HasConflicts() bool {
	return len(report.Conflicts) > 0
}

func NewConflictDetector() ConflictDetector {
	return &conflictDetectorImplementation{}
}

// DetectConflicts is a shorthand for NewConflictDetector().Detect(states)
func DetectConflicts(states []DisciplineState) ConflictReport {
	return NewConflictDetector().Detect(states)
}

// SectionsConflict checks whether any slot of section1 overlaps any slot of section2. A section never conflicts with itself
func SectionsConflict(section1, section2 ClassSection) bool {
	if section1.Id == section2.Id && section1.Discipline == section2.Discipline {
		return false
	}
	for _, slot1 := range section1.Slots {
		for _, slot2 := range section2.Slots {
			if slot1.Overlaps(slot2) {
				return true
			}
		}
	}
	return false
}

// overlappingSlots returns the intersection of every overlapping slot pair of both sections
func overlappingSlots(section1, section2 ClassSection) []TimeSlot {
	overlaps := make([]TimeSlot, 0)
	if section1.Id == section2.Id && section1.Discipline == section2.Discipline {
		return overlaps
	}
	for _, slot1 := range section1.Slots {
		for _, slot2 := range section2.Slots {
			if intersection, ok := slot1.Intersection(slot2); ok {
				overlaps = append(overlaps, intersection)
			}
		}
	}
	return overlaps
}
