package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/limaJavier/gradeplanner/pkg/config"
	"github.com/limaJavier/gradeplanner/pkg/export"
	"github.com/limaJavier/gradeplanner/pkg/metrics"
	"github.com/limaJavier/gradeplanner/pkg/model"
)

const (
	exitFound              = 10
	exitVerificationFailed = 15
	exitNotFound           = 20
	exitUsage              = 1
)

var validFormats = []string{"json", "xlsx"}

type output struct {
	Combinations        []model.Combination    `json:"combinations"`
	Stats               model.CombinationStats `json:"stats"`
	CurrentIndex        int                    `json:"current_index"`
	Preview             []model.GridSlot       `json:"preview"`
	Conflicts           []model.Conflict       `json:"conflicts"`
	ConflictingSections []int64                `json:"conflicting_sections"`
	Credits             model.Credits          `json:"credits"`
	Selections          map[int64]int64        `json:"selections"`
	Changed             []int64                `json:"changed"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Define arguments
	flags := flag.NewFlagSet("grade", flag.ContinueOnError)
	flags.SetOutput(stderr)
	filePathPtr := flags.String("file", "", "Path to the input file")
	configPathPtr := flags.String("config", "", "Path to the YAML configuration; $GRADE_CONFIG_PATH or configs/config.yaml when empty")
	maxPtr := flags.Uint64("max", 0, "Maximum amount of combinations to generate; overrides generator.max_results when greater than 0")
	indexPtr := flags.Int("index", 0, "Combination to preview (or apply), where 0 is the default; out-of-range values are clamped")
	applyPtr := flags.Bool("apply", false, "Apply the combination at -index to the planning list")
	formatPtr := flags.String("format", "json", "Output format. Allowed values are: \"json\" and \"xlsx\", where \"json\" is the default")
	outFilePathPtr := flags.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output (json only)")
	metricsPtr := flags.Bool("metrics", false, "Dump generator metrics to the Standard Error in the Prometheus text format")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	format := strings.ToLower(*formatPtr)

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		fmt.Fprintf(stderr, "cannot load config: %v\n", err)
		return exitUsage
	}
	logger := newLogger(cfg, stderr)

	// Validate arguments
	if *filePathPtr == "" {
		logger.Error().Msg("an input file must be specified")
		return exitUsage
	} else if !slices.Contains(validFormats, format) {
		logger.Error().Str("format", format).Msg("invalid output format")
		return exitUsage
	} else if format == "xlsx" && *outFilePathPtr == "" {
		logger.Error().Msg("an output file must be specified for the xlsx format")
		return exitUsage
	}

	// Extract input
	list, err := model.InputFromJson(*filePathPtr)
	if err != nil {
		logger.Error().Err(err).Str("file", *filePathPtr).Msg("cannot parse input file")
		return exitUsage
	}
	states := list.States()

	// Initialize engines
	registry := prometheus.NewRegistry()
	options := []model.GeneratorOption{model.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		recorder, err := metrics.NewRecorder(registry)
		if err != nil {
			logger.Error().Err(err).Msg("cannot initialize metrics")
			return exitUsage
		}
		options = append(options, model.WithRecorder(recorder))
	}
	maxResults := cfg.Generator.MaxResults
	if *maxPtr > 0 {
		maxResults = *maxPtr
	}
	generator := model.NewCombinationGenerator(maxResults, options...)

	// Generate combinations
	combinations := generator.Generate(states)
	logger.Info().Int("disciplines", len(list.Visible())).Int("combinations", len(combinations)).Msg("combinations generated")

	// Verify combinations correctness
	for _, combination := range combinations {
		if !model.Verify(combination, states) {
			logger.Error().Uint64("combination", combination.Id).Msg("combination verification failed")
			return exitVerificationFailed
		}
	}

	// Navigate and apply
	navigator := model.NewNavigator(combinations, states)
	navigator.Select(*indexPtr)
	navigator.SetShowPreview(navigator.Len() > 0)
	changed := make([]int64, 0)
	if *applyPtr {
		if combination, ok := navigator.Apply(*indexPtr); ok {
			changed = list.ApplyCombination(combination)
			logger.Info().Uint64("combination", combination.Id).Ints64("changed", changed).Msg("combination applied")
		} else {
			logger.Warn().Msg("there is no combination to apply")
		}
	}

	// Build output
	report := model.DetectConflicts(list.States())
	conflictingSections := lo.Keys(report.ConflictingSections)
	slices.Sort(conflictingSections)
	result := output{
		Combinations:        combinations,
		Stats:               model.Stats(combinations),
		CurrentIndex:        navigator.Index(),
		Preview:             navigator.Preview(cfg.Palette),
		Conflicts:           report.Conflicts,
		ConflictingSections: conflictingSections,
		Credits:             list.Credits(),
		Selections:          list.Selections(),
		Changed:             changed,
	}

	switch format {
	case "xlsx":
		grid := list.Slots(cfg.Palette)
		if navigator.ShowPreview() {
			grid = result.Preview
		}
		err = writeWorkbook(*outFilePathPtr, cfg.Export.SheetName, grid, combinations, states)
	default:
		err = writeJson(*outFilePathPtr, stdout, result)
	}
	if err != nil {
		logger.Error().Err(err).Msg("an error occurred while writing the output")
		return exitUsage
	}

	if *metricsPtr {
		if err := metrics.Dump(registry, stderr); err != nil {
			logger.Error().Err(err).Msg("cannot dump metrics")
		}
	}

	if len(combinations) == 0 {
		return exitNotFound
	}
	return exitFound
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	var writer io.Writer = out
	if cfg.Log.Pretty {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(writer).
		Level(cfg.LogLevel()).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func writeJson(outFile string, stdout io.Writer, result output) error {
	resultJson, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot build output json: %w", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		_, err = fmt.Fprintln(stdout, string(resultJson))
		return err
	}
	return os.WriteFile(outFile, resultJson, 0666)
}

func writeWorkbook(outFile, sheet string, grid []model.GridSlot, combinations []model.Combination, states []model.DisciplineState) (err error) {
	workbook := export.NewWorkbook(sheet)
	defer func() {
		err = errors.Join(err, workbook.Close())
	}()

	if err := workbook.WriteGrid(grid); err != nil {
		return fmt.Errorf("cannot write grid: %w", err)
	}
	if err := workbook.WriteCombinations(combinations, states); err != nil {
		return fmt.Errorf("cannot write combinations: %w", err)
	}
	return workbook.SaveAs(outFile)
}
