package model

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type backtrackingGenerator struct {
	maxResults uint64
	logger     zerolog.Logger
	recorder   Recorder
}

func (generator *backtrackingGenerator) Generate(states []DisciplineState) []Combination {
	started := time.Now()

	//** Keep visible disciplines in list order
	disciplines := lo.Map(visibleStates(states), func(state DisciplineState, _ int) Discipline { return state.Discipline })
	generator.logger.Debug().Int("disciplines", len(disciplines)).Uint64("max", generator.maxResults).Msg("generating combinations")

	combinations := make([]Combination, 0)
	if len(disciplines) == 0 || lo.SomeBy(disciplines, func(discipline Discipline) bool { return len(discipline.Sections) == 0 }) {
		generator.record(GenerationRun{Disciplines: len(disciplines), Duration: time.Since(started)})
		return combinations
	}

	//** Extract domains
	domains := lo.Map(disciplines, func(discipline Discipline, _ int) uint64 { return uint64(len(discipline.Sections)) })

	//** Initialize dependencies
	evaluator := newPredicateEvaluator(disciplines)
	indexer := newIndexer(domains)
	permutations := newPermutationGenerator(domains)

	pruned := uint64(0)
	constraints := []func(permutation []uint64) bool{
		// The section just placed must not overlap any section placed before it
		func(permutation []uint64) bool {
			current := lastAssigned(permutation)
			if current < 0 {
				return true
			}
			if evaluator.ConflictsWithChosen(permutation, uint64(current), permutation[current]) {
				pruned++
				return false
			}
			return true
		},
	}

	//** Enumerate
	credits := lo.Reduce(disciplines, func(credits Credits, discipline Discipline, _ int) Credits {
		return credits.Add(discipline.Credits())
	}, Credits{})

	if !indexer.Fits() {
		generator.logger.Warn().Int("disciplines", len(disciplines)).Msg("too many section choices for positional ids, numbering combinations in discovery order")
	}

	// One permutation past the cap tells whether the search was actually cut short
	limit := generator.maxResults
	if limit < math.MaxUint64 {
		limit++
	}
	found := permutations.ConstrainedPermutations(constraints, limit)
	capped := uint64(len(found)) > generator.maxResults
	if capped {
		found = found[:generator.maxResults]
	}

	for n, permutation := range found {
		sections := make([]ClassSection, len(permutation))
		for i, position := range permutation {
			sections[i] = disciplines[i].Sections[position]
		}
		id := uint64(n + 1)
		if indexer.Fits() {
			id = indexer.Index(permutation)
		}
		combinations = append(combinations, Combination{
			Id:       id,
			Sections: sections,
			Credits:  credits,
		})
	}

	run := GenerationRun{
		Disciplines:  len(disciplines),
		Combinations: len(combinations),
		Pruned:       pruned,
		Capped:       capped,
		Duration:     time.Since(started),
	}
	generator.logger.Debug().
		Int("combinations", run.Combinations).
		Uint64("pruned", run.Pruned).
		Bool("capped", run.Capped).
		Dur("duration", run.Duration).
		Msg("combinations generated")
	generator.record(run)

	return combinations
}

func (generator *backtrackingGenerator) record(run GenerationRun) {
	if generator.recorder != nil {
		generator.recorder.RecordGeneration(run)
	}
}

// lastAssigned returns the position of the deepest assigned domain, or -1 when nothing is assigned yet
func lastAssigned(permutation []uint64) int {
	for i, value := range permutation {
		if value == math.MaxUint64 {
			return i - 1
		}
	}
	return len(permutation) - 1
}
