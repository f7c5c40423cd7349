package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawSchedule struct {
	Day   string `mapstructure:"dia"`
	Start string `mapstructure:"horario_inicio"`
	End   string `mapstructure:"horario_fim"`
}

type RawProfessor struct {
	Name string `mapstructure:"nome"`
}

type RawClass struct {
	Id         int64
	Code       string `mapstructure:"codigo_turma"`
	Schedules  []RawSchedule
	Professors []RawProfessor
}

type RawDiscipline struct {
	Id           int64
	Code         string     `mapstructure:"codigo"`
	Name         string     `mapstructure:"nome"`
	CreditsClass uint64     `mapstructure:"creditos_aula"`
	CreditsWork  uint64     `mapstructure:"creditos_trabalho"`
	Classes      []RawClass `mapstructure:"classes"`
}

type RawCustomDiscipline struct {
	Id           int64
	Code         string        `mapstructure:"codigo"`
	Name         string        `mapstructure:"nome"`
	CreditsClass uint64        `mapstructure:"creditos_aula"`
	CreditsWork  uint64        `mapstructure:"creditos_trabalho"`
	Schedules    []RawSchedule `mapstructure:"schedules"`
}

type RawState struct {
	Discipline int64  `mapstructure:"discipline_id"`
	Custom     bool   `mapstructure:"custom"`
	Visible    *bool  `mapstructure:"visible"`
	Selection  *int64 `mapstructure:"selected_class_id"`
}

// RawPlanningInput mirrors the payload served by the disciplines API plus the user's planning states
type RawPlanningInput struct {
	Disciplines []RawDiscipline
	Custom      []RawCustomDiscipline
	States      []RawState
}

func InputFromJson(file string) (*PlanningList, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}
	return InputFromBytes(bytes)
}

func InputFromBytes(bytes []byte) (*PlanningList, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse input: %w", err)
	}

	var rawInput RawPlanningInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return nil, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

// ProcessRawInput validates the raw payload and builds the planning list. Every malformed record is reported here,
// so that the combination and conflict algorithms can rely on well-formed slots. Disciplines named by the states
// come first, in the order of the states; the rest follow in payload order, catalog before custom
func ProcessRawInput(rawInput RawPlanningInput) (*PlanningList, error) {
	list := NewPlanningList()

	//** Manage disciplines
	for _, rawDiscipline := range rawInput.Disciplines {
		discipline, err := processRawDiscipline(rawDiscipline)
		if err != nil {
			return nil, err
		}
		if !list.Add(discipline) {
			return nil, fmt.Errorf("duplicate discipline \"%v\" (id %d)", rawDiscipline.Code, rawDiscipline.Id)
		}
	}

	//** Manage custom disciplines
	for _, rawCustom := range rawInput.Custom {
		slots, err := processRawSchedules(rawCustom.Schedules)
		if err != nil {
			return nil, fmt.Errorf("custom discipline \"%v\": %w", rawCustom.Name, err)
		}
		if rawCustom.Id <= 0 {
			return nil, fmt.Errorf("custom discipline \"%v\" must have a positive id: %d", rawCustom.Name, rawCustom.Id)
		}
		block := CustomBlock{
			Id:           rawCustom.Id,
			Code:         rawCustom.Code,
			Name:         rawCustom.Name,
			CreditsClass: rawCustom.CreditsClass,
			CreditsWork:  rawCustom.CreditsWork,
			Slots:        slots,
		}
		if !list.AddCustom(block) {
			return nil, fmt.Errorf("duplicate custom discipline \"%v\" (id %d)", rawCustom.Name, rawCustom.Id)
		}
	}

	//** Manage states
	order := make([]int64, 0, len(rawInput.States))
	for _, rawState := range rawInput.States {
		disciplineId := rawState.Discipline
		if rawState.Custom {
			disciplineId = -disciplineId
		}
		if !list.Contains(disciplineId) {
			return nil, fmt.Errorf("state for %w: %d", ErrUnknownDiscipline, rawState.Discipline)
		}
		order = append(order, disciplineId)
		if rawState.Visible != nil {
			if err := list.SetVisibility(disciplineId, *rawState.Visible); err != nil {
				return nil, err
			}
		}
		if rawState.Custom {
			continue
		}
		if rawState.Selection == nil {
			list.ClearSelection(disciplineId)
		} else if err := list.SelectSection(disciplineId, *rawState.Selection); err != nil {
			return nil, err
		}
	}

	// States follow the user's planning order, so they set the list order
	if err := list.Reorder(order); err != nil {
		return nil, fmt.Errorf("invalid states: %w", err)
	}

	return list, nil
}

func processRawDiscipline(rawDiscipline RawDiscipline) (Discipline, error) {
	discipline := Discipline{
		Id:           rawDiscipline.Id,
		Code:         rawDiscipline.Code,
		Name:         rawDiscipline.Name,
		CreditsClass: rawDiscipline.CreditsClass,
		CreditsWork:  rawDiscipline.CreditsWork,
		Sections:     make([]ClassSection, 0, len(rawDiscipline.Classes)),
	}
	if discipline.Id <= 0 {
		return Discipline{}, fmt.Errorf("discipline \"%v\" must have a positive id: %d", discipline.Code, discipline.Id)
	}

	seen := make(map[int64]bool)
	for _, rawClass := range rawDiscipline.Classes {
		// Non-positive ids belong to custom disciplines
		if rawClass.Id <= 0 {
			return Discipline{}, fmt.Errorf("discipline \"%v\", class \"%v\" must have a positive id: %d", discipline.Code, rawClass.Code, rawClass.Id)
		}
		if seen[rawClass.Id] {
			return Discipline{}, fmt.Errorf("discipline \"%v\": duplicate class %d", discipline.Code, rawClass.Id)
		}
		seen[rawClass.Id] = true

		slots, err := processRawSchedules(rawClass.Schedules)
		if err != nil {
			return Discipline{}, fmt.Errorf("discipline \"%v\", class \"%v\": %w", discipline.Code, rawClass.Code, err)
		}

		discipline.Sections = append(discipline.Sections, ClassSection{
			Id:         rawClass.Id,
			Discipline: discipline.Id,
			Code:       rawClass.Code,
			Slots:      slots,
			Professors: lo.Map(rawClass.Professors, func(professor RawProfessor, _ int) string { return professor.Name }),
		})
	}

	return discipline, nil
}

func processRawSchedules(rawSchedules []RawSchedule) ([]TimeSlot, error) {
	slots := make([]TimeSlot, 0, len(rawSchedules))
	errs := make([]error, 0)
	for _, rawSchedule := range rawSchedules {
		slot, err := ParseTimeSlot(rawSchedule.Day, rawSchedule.Start, rawSchedule.End)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		slots = append(slots, slot)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return slots, nil
}
