// Package app wires the pipeline stages together: load, cleanse, derive,
// split, then fit/predict/evaluate for each configured estimator, strictly
// in sequence.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eleven413/playcall/internal/adapters/dataset"
	"github.com/eleven413/playcall/internal/adapters/estimator"
	"github.com/eleven413/playcall/internal/domain/cleanse"
	"github.com/eleven413/playcall/internal/domain/evaluate"
	"github.com/eleven413/playcall/internal/domain/feature"
	"github.com/eleven413/playcall/internal/domain/play"
	"github.com/eleven413/playcall/internal/domain/split"
	"github.com/eleven413/playcall/pkg/logger"
	"github.com/eleven413/playcall/pkg/metrics"
)

// Service runs the play-call prediction pipeline.
type Service struct {
	dataPath    string
	minGameID   int64
	trainBefore int64
	testAfter   int64
	estimators  []estimator.Estimator

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the play-by-play CSV path.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithMinGameID sets the cleansing lower bound on game ids.
func WithMinGameID(id int64) Option {
	return func(s *Service) {
		if id > 0 {
			s.minGameID = id
		}
	}
}

// WithSeasonCutoffs sets the season-split cutoffs: train takes game ids
// below trainBefore, test takes ids above testAfter.
func WithSeasonCutoffs(trainBefore, testAfter int64) Option {
	return func(s *Service) {
		if trainBefore > 0 && testAfter >= trainBefore {
			s.trainBefore = trainBefore
			s.testAfter = testAfter
		}
	}
}

// WithEstimators sets the estimators to fit and evaluate, in order.
func WithEstimators(ests ...estimator.Estimator) Option {
	return func(s *Service) {
		if len(ests) > 0 {
			s.estimators = ests
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath:    "plays.csv",
		minGameID:   2015000000,
		trainBefore: 2019000000,
		testAfter:   2019000000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one batch pipeline pass. Schema and bucket-domain errors
// abort the run before any model is fit; an estimator failure is recorded
// on the report and the remaining estimators proceed independently.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	started := time.Now()
	metrics.RecordRunStarted()

	report := &Report{
		RunID:    uuid.NewString(),
		Failures: map[string]error{},
	}
	s.logger.Info(ctx, "starting pipeline run",
		logger.String("runID", report.RunID),
		logger.String("dataPath", s.dataPath),
	)

	raw, err := dataset.Load(ctx, s.dataPath)
	if err != nil {
		metrics.RecordRunFailed()
		return nil, err
	}
	report.RowsLoaded = len(raw)
	metrics.RecordRowsLoaded(len(raw))

	plays, drops := cleanse.New(cleanse.WithMinGameID(s.minGameID)).Filter(raw)
	report.RowsRetained = len(plays)
	report.Drops = drops
	metrics.RecordRowsDropped("old_season", drops.OldSeason)
	metrics.RecordRowsDropped("play_type", drops.PlayType)
	metrics.RecordRowsDropped("missing_data", drops.MissingData)
	metrics.RecordRowsDropped("bad_down", drops.BadDown)
	s.logger.Info(ctx, "cleansed dataset",
		logger.Int("loaded", len(raw)),
		logger.Int("retained", len(plays)),
		logger.Int("dropped", drops.Total()),
	)

	matrix, err := feature.NewDeriver().Derive(plays)
	if err != nil {
		metrics.RecordRunFailed()
		return nil, err
	}

	train, test := split.New(
		split.WithTrainBefore(s.trainBefore),
		split.WithTestAfter(s.testAfter),
	).BySeason(matrix)
	report.TrainRows = train.Len()
	report.TestRows = test.Len()
	metrics.UpdateSplitSizes(train.Len(), test.Len())
	s.logger.Info(ctx, "split by season",
		logger.Int("train", train.Len()),
		logger.Int("test", test.Len()),
		logger.Int64("trainBefore", s.trainBefore),
		logger.Int64("testAfter", s.testAfter),
	)

	trainLabels := train.LabelCodes()
	for _, est := range s.estimators {
		result, err := s.evaluateOne(ctx, est, train, trainLabels, test)
		if err != nil {
			// A failed model simply has no evaluation results; the rest
			// proceed independently.
			metrics.RecordModelError(est.Name())
			report.Failures[est.Name()] = err
			s.logger.Error(ctx, "estimator failed", logger.String("model", est.Name()), logger.Error(err))
			continue
		}
		report.Results = append(report.Results, result)
		metrics.SetModelAccuracy(est.Name(), result.Accuracy)
		s.logger.Info(ctx, "evaluated model",
			logger.String("model", est.Name()),
			logger.Float64("accuracy", result.Accuracy),
			logger.Duration("fit", result.FitDuration),
			logger.Duration("predict", result.PredictDuration),
		)
	}

	metrics.ObserveRunDuration(time.Since(started))
	return report, nil
}

func (s *Service) evaluateOne(ctx context.Context, est estimator.Estimator, train *feature.Matrix, trainLabels []int, test *feature.Matrix) (*evaluate.Result, error) {
	fitStart := time.Now()
	if err := est.Fit(ctx, train, trainLabels); err != nil {
		return nil, err
	}
	fitDur := time.Since(fitStart)
	metrics.ObserveFitDuration(est.Name(), fitDur)

	predStart := time.Now()
	codes, err := est.Predict(ctx, test)
	if err != nil {
		return nil, err
	}
	predDur := time.Since(predStart)
	metrics.ObservePredictDuration(est.Name(), predDur)

	predicted := make([]play.Type, len(codes))
	for i, c := range codes {
		t, err := play.TypeFromIndex(c)
		if err != nil {
			return nil, err
		}
		predicted[i] = t
	}

	return evaluate.NewResult(est.Name(), predicted, test.Labels, fitDur, predDur)
}
