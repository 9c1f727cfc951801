package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pairfold/reduction"
)

const namespace = "pairfold"

// Recorder counts rewrites and combines per engine.
type Recorder struct {
	registry *prometheus.Registry
	explodes *prometheus.CounterVec
	splits   *prometheus.CounterVec
	combines *prometheus.CounterVec
	steps    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		explodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "explodes_total",
			Help:      "Total number of pair explosions.",
		}, []string{"engine"}),
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_total",
			Help:      "Total number of leaf splits.",
		}, []string{"engine"}),
		combines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combines_total",
			Help:      "Total number of combine operations.",
		}, []string{"engine"}),
		steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reduce_steps",
			Help:      "Rewrites performed to reduce one combined number.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"engine"}),
	}
	r.registry.MustRegister(r.explodes, r.splits, r.combines, r.steps)

	return r
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Explodes returns the explosion counter for engine.
func (r *Recorder) Explodes(engine string) prometheus.Counter {
	return r.explodes.WithLabelValues(engine)
}

// Splits returns the split counter for engine.
func (r *Recorder) Splits(engine string) prometheus.Counter {
	return r.splits.WithLabelValues(engine)
}

// Combines returns the combine counter for engine.
func (r *Recorder) Combines(engine string) prometheus.Counter {
	return r.combines.WithLabelValues(engine)
}

// Hooks returns reduction options that count every rewrite for engine and
// log it at debug level. onStep, if non-nil, is called once per rewrite.
// logger may be nil.
func (r *Recorder) Hooks(engine string, logger *slog.Logger, onStep func()) []reduction.Option {
	explodes, splits := r.Explodes(engine), r.Splits(engine)
	if onStep == nil {
		onStep = func() {}
	}

	return []reduction.Option{
		reduction.WithOnExplode(func(depth int, left, right uint64) {
			explodes.Inc()
			onStep()
			if logger != nil {
				logger.Debug("explode", "engine", engine, "depth", depth, "left", left, "right", right)
			}
		}),
		reduction.WithOnSplit(func(value uint64) {
			splits.Inc()
			onStep()
			if logger != nil {
				logger.Debug("split", "engine", engine, "value", value)
			}
		}),
	}
}

// ObserveCombine records one combine that took steps rewrites.
func (r *Recorder) ObserveCombine(engine string, steps int) {
	r.combines.WithLabelValues(engine).Inc()
	r.steps.WithLabelValues(engine).Observe(float64(steps))
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}
