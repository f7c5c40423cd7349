package model

import (
	"time"

	"github.com/rs/zerolog"
)

const DefaultMaxResults = 50

// Combination is one conflict-free choice of exactly one section per visible discipline
type Combination struct {
	// Unique among the combinations of the same discipline list. It encodes the chosen section positions (see
	// DecodeCombination) unless the product of the section counts overflows a uint64, in which case combinations
	// are numbered in discovery order
	Id       uint64         `json:"id"`
	Sections []ClassSection `json:"sections"` // Ordered as the visible disciplines of the planning list
	Credits  Credits        `json:"credits"`
}

// SectionIds returns the chosen section ids in discipline order
func (combination Combination) SectionIds() []int64 {
	ids := make([]int64, len(combination.Sections))
	for i, section := range combination.Sections {
		ids[i] = section.Id
	}
	return ids
}

// Selections maps each covered discipline to its chosen section
func (combination Combination) Selections() map[int64]int64 {
	selections := make(map[int64]int64, len(combination.Sections))
	for _, section := range combination.Sections {
		selections[section.Discipline] = section.Id
	}
	return selections
}

type CombinationGenerator interface {
	// Generate enumerates, in discovery order, the conflict-free combinations of the visible disciplines up to the
	// configured cap. Hidden disciplines are ignored. A visible discipline without sections, or no visible discipline
	// at all, yields no combination
	Generate(states []DisciplineState) []Combination
}

// GenerationRun summarizes one call to Generate
type GenerationRun struct {
	Disciplines  int
	Combinations int
	Pruned       uint64 // Branches cut because a section overlapped an already chosen one
	Capped       bool   // The cap cut the search short: at least one more combination exists
	Duration     time.Duration
}

// Recorder receives a summary of every generation run
type Recorder interface {
	RecordGeneration(run GenerationRun)
}

type GeneratorOption func(*backtrackingGenerator)

func WithLogger(logger zerolog.Logger) GeneratorOption {
	return func(generator *backtrackingGenerator) {
		generator.logger = logger
	}
}

func WithRecorder(recorder Recorder) GeneratorOption {
	return func(generator *backtrackingGenerator) {
		generator.recorder = recorder
	}
}

// NewCombinationGenerator returns a generator capped at maxResults combinations (DefaultMaxResults when zero)
func NewCombinationGenerator(maxResults uint64, options ...GeneratorOption) CombinationGenerator {
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}
	generator := &backtrackingGenerator{
		maxResults: maxResults,
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(generator)
	}
	return generator
}

func GenerateCombinations(states []DisciplineState, maxResults uint64) []Combination {
	return NewCombinationGenerator(maxResults).Generate(states)
}
