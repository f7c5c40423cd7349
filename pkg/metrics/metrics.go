package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/limaJavier/gradeplanner/pkg/model"
)

const namespace = "grade_planner"

// Recorder exports generator runs as Prometheus metrics
type Recorder struct {
	runs         *prometheus.CounterVec
	combinations prometheus.Counter
	pruned       prometheus.Counter
	duration     prometheus.Histogram
	disciplines  prometheus.Gauge
}

var _ model.Recorder = (*Recorder)(nil)

func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	recorder := &Recorder{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_runs_total",
				Help:      "Count of combination generation runs by result.",
			},
			[]string{"result"},
		),
		combinations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "combinations_generated_total",
				Help:      "Count of conflict-free combinations generated.",
			},
		),
		pruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "branches_pruned_total",
				Help:      "Count of search branches cut by an overlapping section.",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Duration of combination generation runs.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		disciplines: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "visible_disciplines",
				Help:      "Visible disciplines in the last generation run.",
			},
		),
	}

	for _, collector := range []prometheus.Collector{recorder.runs, recorder.combinations, recorder.pruned, recorder.duration, recorder.disciplines} {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return recorder, nil
}

func (r *Recorder) RecordGeneration(run model.GenerationRun) {
	r.runs.WithLabelValues(result(run)).Inc()
	r.combinations.Add(float64(run.Combinations))
	r.pruned.Add(float64(run.Pruned))
	r.duration.Observe(run.Duration.Seconds())
	r.disciplines.Set(float64(run.Disciplines))
}

func result(run model.GenerationRun) string {
	switch {
	case run.Combinations == 0:
		return "empty"
	case run.Capped:
		return "capped"
	default:
		return "complete"
	}
}

// Dump writes every metric gathered by gatherer in the text exposition format
func Dump(gatherer prometheus.Gatherer, w io.Writer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
