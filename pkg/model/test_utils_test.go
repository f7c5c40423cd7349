package model

import (
	"fmt"
	"math/rand"
	"slices"
)

const (
	feasibleTestDirectory   = "testdata/feasible/"
	infeasibleTestDirectory = "testdata/infeasible/"
)

func mustSlot(day, start, end string) TimeSlot {
	slot, err := ParseTimeSlot(day, start, end)
	if err != nil {
		panic(err)
	}
	return slot
}

func newSection(discipline, id int64, slots ...TimeSlot) ClassSection {
	return ClassSection{
		Id:         id,
		Discipline: discipline,
		Code:       fmt.Sprintf("T%02d", id),
		Slots:      slots,
	}
}

func newDiscipline(id int64, creditsClass, creditsWork uint64, sections ...ClassSection) Discipline {
	for i := range sections {
		sections[i].Discipline = id
	}
	return Discipline{
		Id:           id,
		Code:         fmt.Sprintf("MAC%04d", id),
		Name:         fmt.Sprintf("Discipline %d", id),
		CreditsClass: creditsClass,
		CreditsWork:  creditsWork,
		Sections:     sections,
	}
}

func visibleState(discipline Discipline) DisciplineState {
	state := DisciplineState{Discipline: discipline, Visible: true}
	if len(discipline.Sections) > 0 {
		state.Selection = discipline.Sections[0].Id
		state.Selected = true
	}
	return state
}

func statesOf(disciplines ...Discipline) []DisciplineState {
	states := make([]DisciplineState, 0, len(disciplines))
	for _, discipline := range disciplines {
		states = append(states, visibleState(discipline))
	}
	return states
}

// overlapScenario builds A1 (Mon 08-10), A2 (Mon 10-12) and a single section B1 on the given day 09-11
func overlapScenario(dayOfB string) []DisciplineState {
	a := newDiscipline(1, 4, 0,
		newSection(1, 11, mustSlot("seg", "08:00", "10:00")),
		newSection(1, 12, mustSlot("seg", "10:00", "12:00")),
	)
	b := newDiscipline(2, 2, 1,
		newSection(2, 21, mustSlot(dayOfB, "09:00", "11:00")),
	)
	return statesOf(a, b)
}

// randomStates builds a random planning list with hourly slots between 07:00 and 23:00
func randomStates(random *rand.Rand, disciplines, sections, slotsPerSection int) []DisciplineState {
	states := make([]DisciplineState, 0, disciplines)
	sectionId := int64(1)
	for d := range disciplines {
		disciplineSections := make([]ClassSection, 0, sections)
		for range sections {
			slots := make([]TimeSlot, 0, slotsPerSection)
			for range slotsPerSection {
				start := 7 + random.Intn(15)
				length := 1 + random.Intn(2)
				slots = append(slots, TimeSlot{
					Day:   Weekdays[random.Intn(len(Weekdays))],
					Start: NewClock(start, 0),
					End:   NewClock(start+length, 0),
				})
			}
			disciplineSections = append(disciplineSections, newSection(int64(d+1), sectionId, slots...))
			sectionId++
		}
		states = append(states, visibleState(newDiscipline(int64(d+1), uint64(random.Intn(6)), uint64(random.Intn(3)), disciplineSections...)))
	}
	return states
}

// bruteForce enumerates the whole cartesian product and keeps the conflict-free assignments, returning their section ids
func bruteForce(states []DisciplineState) [][]int64 {
	visible := visibleStates(states)
	result := make([][]int64, 0)
	if len(visible) == 0 {
		return result
	}

	var walk func(depth int, chosen []ClassSection)
	walk = func(depth int, chosen []ClassSection) {
		if depth == len(visible) {
			for i := range chosen {
				for j := i + 1; j < len(chosen); j++ {
					if SectionsConflict(chosen[i], chosen[j]) {
						return
					}
				}
			}
			ids := make([]int64, len(chosen))
			for i, section := range chosen {
				ids[i] = section.Id
			}
			result = append(result, ids)
			return
		}
		for _, section := range visible[depth].Discipline.Sections {
			walk(depth+1, append(slices.Clone(chosen), section))
		}
	}
	walk(0, make([]ClassSection, 0, len(visible)))

	return result
}
