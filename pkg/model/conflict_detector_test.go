package model

import (
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflicts(t *testing.T) {
	t.Run("Overlapping selections", func(t *testing.T) {
		g := NewWithT(t)

		//** Arrange
		states := overlapScenario("seg")

		//** Act
		report := NewConflictDetector().Detect(states)

		//** Assert
		g.Expect(report.HasConflicts()).To(BeTrue())
		g.Expect(report.Conflicts).To(ConsistOf(Conflict{
			A:        1,
			B:        2,
			SectionA: 11,
			SectionB: 21,
			Slots:    []TimeSlot{mustSlot("seg", "09:00", "10:00")},
		}))
		g.Expect(report.ConflictingSections).To(Equal(map[int64]bool{11: true, 21: true}))
	})

	t.Run("Disjoint selections", func(t *testing.T) {
		report := DetectConflicts(overlapScenario("ter"))

		assert.False(t, report.HasConflicts())
		assert.Empty(t, report.Conflicts)
		assert.Empty(t, report.ConflictingSections)
	})

	t.Run("Touching selections", func(t *testing.T) {
		states := overlapScenario("seg")
		states[0].Selection = 12
		states[1].Discipline.Sections[0].Slots = []TimeSlot{mustSlot("seg", "12:00", "13:00")}

		assert.False(t, DetectConflicts(states).HasConflicts())
	})

	t.Run("Hidden disciplines are ignored", func(t *testing.T) {
		states := overlapScenario("seg")
		states[1].Visible = false

		assert.False(t, DetectConflicts(states).HasConflicts())
	})

	t.Run("Unselected disciplines are ignored", func(t *testing.T) {
		states := overlapScenario("seg")
		states[0].Selected = false

		assert.False(t, DetectConflicts(states).HasConflicts())
	})

	t.Run("Custom disciplines are always selected", func(t *testing.T) {
		list := NewPlanningList()
		list.Add(newDiscipline(1, 4, 0, newSection(1, 11, mustSlot("seg", "08:00", "10:00"))))
		list.AddCustom(CustomBlock{Id: 7, Name: "Trabalho", Slots: []TimeSlot{mustSlot("seg", "09:30", "18:00")}})

		report := DetectConflicts(list.States())

		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, int64(1), report.Conflicts[0].A)
		assert.Equal(t, int64(-7), report.Conflicts[0].B)
		assert.True(t, report.ConflictingSections[-7])
	})

	t.Run("Every overlapping pair is reported", func(t *testing.T) {
		a := newDiscipline(1, 2, 0, newSection(1, 11, mustSlot("seg", "08:00", "10:00"), mustSlot("qua", "08:00", "10:00")))
		b := newDiscipline(2, 2, 0, newSection(2, 21, mustSlot("seg", "09:00", "11:00"), mustSlot("qua", "07:00", "08:30")))
		c := newDiscipline(3, 2, 0, newSection(3, 31, mustSlot("seg", "10:30", "12:00")))

		report := DetectConflicts(statesOf(a, b, c))

		require.Len(t, report.Conflicts, 2)
		assert.Equal(t, []TimeSlot{mustSlot("seg", "09:00", "10:00"), mustSlot("qua", "08:00", "08:30")}, report.Conflicts[0].Slots)
		assert.Equal(t, int64(2), report.Conflicts[1].A)
		assert.Equal(t, int64(3), report.Conflicts[1].B)
		assert.Len(t, report.ConflictingSections, 3)
	})
}

func TestDetectDoesNotMutateStates(t *testing.T) {
	states := overlapScenario("seg")
	before := make([]DisciplineState, len(states))
	copy(before, states)

	DetectConflicts(states)

	assert.Equal(t, before, states)
}

func TestSectionsConflict(t *testing.T) {
	t.Run("Symmetry", func(t *testing.T) {
		random := rand.New(rand.NewSource(13))
		for range 10 {
			states := randomStates(random, 2, 10, 2)
			for _, section1 := range states[0].Discipline.Sections {
				for _, section2 := range states[1].Discipline.Sections {
					assert.Equal(t, SectionsConflict(section1, section2), SectionsConflict(section2, section1))
				}
			}
		}
	})

	t.Run("A section never conflicts with itself", func(t *testing.T) {
		random := rand.New(rand.NewSource(17))
		for _, state := range randomStates(random, 3, 10, 3) {
			for _, section := range state.Discipline.Sections {
				assert.False(t, SectionsConflict(section, section))
			}
		}
	})

	t.Run("Sections without slots never conflict", func(t *testing.T) {
		assert.False(t, SectionsConflict(newSection(1, 1), newSection(2, 2, mustSlot("seg", "08:00", "10:00"))))
	})
}
