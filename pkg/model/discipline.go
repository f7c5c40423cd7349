package model

import (
	"errors"

	"github.com/samber/lo"
)

var (
	ErrUnknownDiscipline = errors.New("unknown discipline")
	ErrUnknownSection    = errors.New("unknown class section")
)

// ClassSection is one offering ("turma") of a discipline with its own weekly schedule
type ClassSection struct {
	Id         int64      `json:"id"`
	Discipline int64      `json:"discipline_id"` // Owning discipline (back-reference by id only)
	Code       string     `json:"codigo_turma"`
	Slots      []TimeSlot `json:"schedules"`
	Professors []string   `json:"professors,omitempty"`
}

type Discipline struct {
	Id           int64
	Code         string
	Name         string
	CreditsClass uint64
	CreditsWork  uint64
	Sections     []ClassSection
	Custom       bool // User-defined block: a single pseudo-section that is always selected
}

type Credits struct {
	Class uint64 `json:"class"`
	Work  uint64 `json:"work"`
}

func (credits Credits) Add(other Credits) Credits {
	return Credits{Class: credits.Class + other.Class, Work: credits.Work + other.Work}
}

func (credits Credits) Total() uint64 {
	return credits.Class + credits.Work
}

func (discipline Discipline) Credits() Credits {
	return Credits{Class: discipline.CreditsClass, Work: discipline.CreditsWork}
}

func (discipline Discipline) Section(id int64) (ClassSection, bool) {
	return lo.Find(discipline.Sections, func(section ClassSection) bool { return section.Id == id })
}

// CustomBlock is a user-defined commitment (work, study group, ...) that occupies the grid like a discipline
type CustomBlock struct {
	Id           int64
	Code         string
	Name         string
	CreditsClass uint64
	CreditsWork  uint64
	Slots        []TimeSlot
}

const customCode = "CUSTOM"
const customSectionCode = "MANUAL"

// Discipline turns the block into a custom discipline. Ids are negated so they never collide with catalog ids
func (block CustomBlock) Discipline() Discipline {
	code := block.Code
	if code == "" {
		code = customCode
	}
	id := -block.Id
	return Discipline{
		Id:           id,
		Code:         code,
		Name:         block.Name,
		CreditsClass: block.CreditsClass,
		CreditsWork:  block.CreditsWork,
		Custom:       true,
		Sections: []ClassSection{{
			Id:         id,
			Discipline: id,
			Code:       customSectionCode,
			Slots:      block.Slots,
		}},
	}
}

// DisciplineState is the read view of a planning-list entry
type DisciplineState struct {
	Discipline Discipline
	Visible    bool
	Selection  int64 // Selected section id; only meaningful when Selected is true
	Selected   bool
}

// SelectedSection resolves the selection of the state. Custom disciplines are always selected
func (state DisciplineState) SelectedSection() (ClassSection, bool) {
	if state.Discipline.Custom && len(state.Discipline.Sections) > 0 {
		return state.Discipline.Sections[0], true
	}
	if !state.Selected {
		return ClassSection{}, false
	}
	return state.Discipline.Section(state.Selection)
}

func visibleStates(states []DisciplineState) []DisciplineState {
	return lo.Filter(states, func(state DisciplineState, _ int) bool { return state.Visible })
}

func sumCredits(states []DisciplineState) Credits {
	return lo.Reduce(states, func(credits Credits, state DisciplineState, _ int) Credits {
		return credits.Add(state.Discipline.Credits())
	}, Credits{})
}
