// Package metrics provides Prometheus metrics for the play-call pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Dataset metrics - row accounting through load and cleanse
	rowsLoaded  prometheus.Counter
	rowsDropped *prometheus.CounterVec
	trainRows   prometheus.Gauge
	testRows    prometheus.Gauge

	// Model metrics - per-estimator fit/predict/evaluate outcomes
	fitDuration     *prometheus.HistogramVec
	predictDuration *prometheus.HistogramVec
	modelAccuracy   *prometheus.GaugeVec
	modelErrors     *prometheus.CounterVec

	// Run metrics
	runsTotal   prometheus.Counter
	runsFailed  prometheus.Counter
	runDuration prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Registry returns the registry the global manager records into, for
// exposing via promhttp.
func Registry() *prometheus.Registry {
	return customRegistry
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "playcall",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_loaded_total",
		Help:      "Total number of raw rows read from the dataset",
	})

	m.rowsDropped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_dropped_total",
			Help:      "Total number of rows dropped during cleansing, by predicate",
		},
		[]string{"reason"},
	)

	m.trainRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "train_rows",
		Help:      "Number of rows in the train split of the last run",
	})

	m.testRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "test_rows",
		Help:      "Number of rows in the test split of the last run",
	})

	m.fitDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fit_duration_seconds",
			Help:      "Wall-clock duration of model fitting, by model",
			Buckets:   m.histogramBuckets,
		},
		[]string{"model"},
	)

	m.predictDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "predict_duration_seconds",
			Help:      "Wall-clock duration of model prediction, by model",
			Buckets:   m.histogramBuckets,
		},
		[]string{"model"},
	)

	m.modelAccuracy = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "model_accuracy",
			Help:      "Overall test-set accuracy of the last run, by model",
		},
		[]string{"model"},
	)

	m.modelErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "model_errors_total",
			Help:      "Total number of estimator fit/predict failures, by model",
		},
		[]string{"model"},
	)

	m.runsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of pipeline runs started",
	})

	m.runsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_failed_total",
		Help:      "Total number of pipeline runs aborted by a fatal error",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "End-to-end wall-clock duration of a pipeline run",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level helpers recording into the global manager.

// RecordRowsLoaded counts raw rows read from the dataset.
func RecordRowsLoaded(n int) {
	if n > 0 {
		globalManager.rowsLoaded.Add(float64(n))
	}
}

// RecordRowsDropped counts rows removed by a cleansing predicate.
func RecordRowsDropped(reason string, n int) {
	if n > 0 {
		globalManager.rowsDropped.WithLabelValues(reason).Add(float64(n))
	}
}

// UpdateSplitSizes records the train/test row counts of a run.
func UpdateSplitSizes(train, test int) {
	globalManager.trainRows.Set(float64(train))
	globalManager.testRows.Set(float64(test))
}

// ObserveFitDuration records a model's fit wall-clock time.
func ObserveFitDuration(model string, d time.Duration) {
	globalManager.fitDuration.WithLabelValues(model).Observe(d.Seconds())
}

// ObservePredictDuration records a model's predict wall-clock time.
func ObservePredictDuration(model string, d time.Duration) {
	globalManager.predictDuration.WithLabelValues(model).Observe(d.Seconds())
}

// SetModelAccuracy records a model's overall test accuracy.
func SetModelAccuracy(model string, accuracy float64) {
	globalManager.modelAccuracy.WithLabelValues(model).Set(accuracy)
}

// RecordModelError counts an estimator fit or predict failure.
func RecordModelError(model string) {
	globalManager.modelErrors.WithLabelValues(model).Inc()
}

// RecordRunStarted counts a pipeline run.
func RecordRunStarted() {
	globalManager.runsTotal.Inc()
}

// RecordRunFailed counts a fatally aborted run.
func RecordRunFailed() {
	globalManager.runsFailed.Inc()
}

// ObserveRunDuration records a run's end-to-end wall-clock time.
func ObserveRunDuration(d time.Duration) {
	globalManager.runDuration.Observe(d.Seconds())
}
