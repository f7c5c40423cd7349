package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// PlanningList is the user's list of disciplines being planned. Disciplines are stored in a flat arena
// addressed by id; visibility and selections are kept apart from the discipline records.
type PlanningList struct {
	order       []int64
	disciplines map[int64]Discipline
	visible     map[int64]bool
	selections  map[int64]int64 // Discipline id -> selected section id
}

func NewPlanningList() *PlanningList {
	return &PlanningList{
		order:       make([]int64, 0),
		disciplines: make(map[int64]Discipline),
		visible:     make(map[int64]bool),
		selections:  make(map[int64]int64),
	}
}

// Add appends a discipline, visible and with its first section selected. Returns false if it was already listed
func (list *PlanningList) Add(discipline Discipline) bool {
	if _, ok := list.disciplines[discipline.Id]; ok {
		return false
	}

	list.order = append(list.order, discipline.Id)
	list.disciplines[discipline.Id] = discipline
	list.visible[discipline.Id] = true
	if len(discipline.Sections) > 0 && !discipline.Custom {
		list.selections[discipline.Id] = discipline.Sections[0].Id
	}
	return true
}

func (list *PlanningList) AddCustom(block CustomBlock) bool {
	return list.Add(block.Discipline())
}

func (list *PlanningList) Remove(disciplineId int64) bool {
	if _, ok := list.disciplines[disciplineId]; !ok {
		return false
	}

	list.order = slices.DeleteFunc(list.order, func(id int64) bool { return id == disciplineId })
	delete(list.disciplines, disciplineId)
	delete(list.visible, disciplineId)
	delete(list.selections, disciplineId)
	return true
}

func (list *PlanningList) Contains(disciplineId int64) bool {
	_, ok := list.disciplines[disciplineId]
	return ok
}

func (list *PlanningList) Len() int {
	return len(list.order)
}

// Reorder moves the given disciplines to the front of the list, in the given order. Unlisted disciplines keep
// their relative order after them
func (list *PlanningList) Reorder(disciplineIds []int64) error {
	seen := make(map[int64]bool, len(disciplineIds))
	for _, disciplineId := range disciplineIds {
		if !list.Contains(disciplineId) {
			return fmt.Errorf("%w: %v", ErrUnknownDiscipline, disciplineId)
		}
		if seen[disciplineId] {
			return fmt.Errorf("discipline %v listed more than once", disciplineId)
		}
		seen[disciplineId] = true
	}

	rest := lo.Filter(list.order, func(id int64, _ int) bool { return !seen[id] })
	list.order = append(slices.Clone(disciplineIds), rest...)
	return nil
}

// ToggleVisibility flips the visibility of the discipline and returns the new value
func (list *PlanningList) ToggleVisibility(disciplineId int64) (bool, error) {
	if !list.Contains(disciplineId) {
		return false, fmt.Errorf("%w: %v", ErrUnknownDiscipline, disciplineId)
	}
	list.visible[disciplineId] = !list.visible[disciplineId]
	return list.visible[disciplineId], nil
}

func (list *PlanningList) SetVisibility(disciplineId int64, visible bool) error {
	if !list.Contains(disciplineId) {
		return fmt.Errorf("%w: %v", ErrUnknownDiscipline, disciplineId)
	}
	list.visible[disciplineId] = visible
	return nil
}

func (list *PlanningList) SelectSection(disciplineId, sectionId int64) error {
	discipline, ok := list.disciplines[disciplineId]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownDiscipline, disciplineId)
	}
	if _, ok := discipline.Section(sectionId); !ok {
		return fmt.Errorf("%w: %v does not belong to discipline %v", ErrUnknownSection, sectionId, discipline.Code)
	}
	list.selections[disciplineId] = sectionId
	return nil
}

func (list *PlanningList) ClearSelection(disciplineId int64) {
	delete(list.selections, disciplineId)
}

// Selection returns the selected section id of the discipline, if any
func (list *PlanningList) Selection(disciplineId int64) (int64, bool) {
	sectionId, ok := list.selections[disciplineId]
	return sectionId, ok
}

// Selections returns a copy of the discipline -> section mapping
func (list *PlanningList) Selections() map[int64]int64 {
	selections := make(map[int64]int64, len(list.selections))
	for disciplineId, sectionId := range list.selections {
		selections[disciplineId] = sectionId
	}
	return selections
}

// States returns every entry in insertion order
func (list *PlanningList) States() []DisciplineState {
	return lo.Map(list.order, func(id int64, _ int) DisciplineState {
		sectionId, selected := list.selections[id]
		return DisciplineState{
			Discipline: list.disciplines[id],
			Visible:    list.visible[id],
			Selection:  sectionId,
			Selected:   selected,
		}
	})
}

func (list *PlanningList) Visible() []DisciplineState {
	return visibleStates(list.States())
}

// Credits sums the credits of every visible discipline (custom ones included)
func (list *PlanningList) Credits() Credits {
	return sumCredits(list.Visible())
}

// ApplyCombination copies the sections of the combination into the selections. It returns the ids of the
// disciplines whose selection actually changed, which is the only state a caller has to persist.
func (list *PlanningList) ApplyCombination(combination Combination) []int64 {
	changed := make([]int64, 0, len(combination.Sections))
	for _, section := range combination.Sections {
		discipline, ok := list.disciplines[section.Discipline]
		if !ok || discipline.Custom {
			continue
		}
		if current, ok := list.selections[section.Discipline]; ok && current == section.Id {
			continue
		}
		list.selections[section.Discipline] = section.Id
		changed = append(changed, section.Discipline)
	}
	return changed
}

// Slots projects the current selections into grid slots. Colors follow the position in the list
func (list *PlanningList) Slots(palette []string) []GridSlot {
	slots := make([]GridSlot, 0)
	for position, state := range list.States() {
		if !state.Visible {
			continue
		}
		section, ok := state.SelectedSection()
		if !ok {
			continue
		}
		slots = append(slots, gridSlots(state.Discipline, section, paletteColor(palette, position))...)
	}
	return slots
}
