package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/limaJavier/gradeplanner/pkg/config"
	"github.com/limaJavier/gradeplanner/pkg/model"
)

const (
	meetingsPerSection = 2
	meetingLength      = 100 // Minutes
)

// Typical lecture start times of a university grade
var meetingStarts = []model.Clock{
	model.NewClock(8, 0),
	model.NewClock(10, 0),
	model.NewClock(14, 0),
	model.NewClock(16, 0),
	model.NewClock(19, 0),
	model.NewClock(21, 0),
}

type Scenario struct {
	Disciplines int
	Sections    int
}

func (scenario Scenario) String() string {
	return fmt.Sprintf("%dx%d", scenario.Disciplines, scenario.Sections)
}

type BenchmarkResult struct {
	Scenario     Scenario
	Run          int
	Duration     time.Duration
	Combinations int
	Pruned       uint64
	Capped       bool
}

// runRecorder keeps the summary of the last generation run
type runRecorder struct {
	last model.GenerationRun
}

func (recorder *runRecorder) RecordGeneration(run model.GenerationRun) {
	recorder.last = run
}

func main() {
	// Define arguments
	scenariosPtr := flag.String("scenarios", "4x5,6x10,8x20", "Comma separated list of DISCIPLINESxSECTIONS scenarios")
	runsPtr := flag.Int("runs", 5, "Random instances per scenario")
	seedPtr := flag.Int64("seed", 1, "Seed of the random instances")
	maxPtr := flag.Uint64("max", 0, "Maximum amount of combinations per run; generator.max_results when 0")
	configPathPtr := flag.String("config", "", "Path to the YAML configuration")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file with the results")
	flag.Parse()

	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	scenarios, err := parseScenarios(*scenariosPtr)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid scenarios")
	} else if *runsPtr <= 0 {
		logger.Fatal().Int("runs", *runsPtr).Msg("runs must be greater than 0")
	}

	maxResults := cfg.Generator.MaxResults
	if *maxPtr > 0 {
		maxResults = *maxPtr
	}

	random := rand.New(rand.NewSource(*seedPtr))
	results := benchmark(scenarios, *runsPtr, maxResults, random, logger)

	file, err := os.Create(*outFilePathPtr)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create CSV file")
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		logger.Fatal().Err(err).Msg("cannot write results")
	}
}

func benchmark(scenarios []Scenario, runs int, maxResults uint64, random *rand.Rand, logger zerolog.Logger) []BenchmarkResult {
	recorder := &runRecorder{}
	generator := model.NewCombinationGenerator(maxResults, model.WithRecorder(recorder))

	results := make([]BenchmarkResult, 0, len(scenarios)*runs)
	for _, scenario := range scenarios {
		for run := range runs {
			list := randomPlanningList(random, scenario)

			generator.Generate(list.States())

			result := BenchmarkResult{
				Scenario:     scenario,
				Run:          run,
				Duration:     recorder.last.Duration,
				Combinations: recorder.last.Combinations,
				Pruned:       recorder.last.Pruned,
				Capped:       recorder.last.Capped,
			}
			logger.Info().
				Stringer("scenario", scenario).
				Int("run", run).
				Dur("duration", result.Duration).
				Int("combinations", result.Combinations).
				Uint64("pruned", result.Pruned).
				Msg("benchmarked")
			results = append(results, result)
		}
	}
	return results
}

// parseScenarios reads a list such as "4x5,6x10"
func parseScenarios(value string) ([]Scenario, error) {
	scenarios := make([]Scenario, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		parts := strings.Split(strings.ToLower(item), "x")
		if len(parts) != 2 {
			return nil, fmt.Errorf("scenario %q must look like DISCIPLINESxSECTIONS", item)
		}
		disciplines, err := strconv.Atoi(parts[0])
		if err != nil || disciplines <= 0 {
			return nil, fmt.Errorf("scenario %q: invalid amount of disciplines", item)
		}
		sections, err := strconv.Atoi(parts[1])
		if err != nil || sections <= 0 {
			return nil, fmt.Errorf("scenario %q: invalid amount of sections", item)
		}
		scenarios = append(scenarios, Scenario{Disciplines: disciplines, Sections: sections})
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("at least one scenario must be specified")
	}
	return scenarios, nil
}

// randomPlanningList builds a planning list whose sections meet twice a week at usual lecture times
func randomPlanningList(random *rand.Rand, scenario Scenario) *model.PlanningList {
	list := model.NewPlanningList()
	sectionId := int64(1)
	for d := range scenario.Disciplines {
		disciplineId := int64(d + 1)
		sections := make([]model.ClassSection, 0, scenario.Sections)
		for s := range scenario.Sections {
			days := lo.Map(random.Perm(len(model.Weekdays))[:meetingsPerSection], func(i int, _ int) model.Weekday { return model.Weekdays[i] })
			start := meetingStarts[random.Intn(len(meetingStarts))]
			sections = append(sections, model.ClassSection{
				Id:         sectionId,
				Discipline: disciplineId,
				Code:       fmt.Sprintf("%d%02d", disciplineId, s+1),
				Slots: lo.Map(days, func(day model.Weekday, _ int) model.TimeSlot {
					return model.TimeSlot{Day: day, Start: start, End: start + meetingLength}
				}),
			})
			sectionId++
		}

		list.Add(model.Discipline{
			Id:           disciplineId,
			Code:         fmt.Sprintf("DIS%04d", disciplineId),
			Name:         fmt.Sprintf("Discipline %d", disciplineId),
			CreditsClass: uint64(2 + random.Intn(5)),
			CreditsWork:  uint64(random.Intn(3)),
			Sections:     sections,
		})
	}
	return list
}

func toCsv(writer io.Writer, results []BenchmarkResult) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"Scenario", "Disciplines", "Sections", "Run", "Duration(us)", "Combinations", "Pruned", "Capped"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Scenario.String(),
			fmt.Sprintf("%d", result.Scenario.Disciplines),
			fmt.Sprintf("%d", result.Scenario.Sections),
			fmt.Sprintf("%d", result.Run),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
			fmt.Sprintf("%d", result.Combinations),
			fmt.Sprintf("%d", result.Pruned),
			fmt.Sprintf("%v", result.Capped),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
