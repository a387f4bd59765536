package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eleven413/playcall/internal/adapters/estimator"
	"github.com/eleven413/playcall/internal/app"
	"github.com/eleven413/playcall/internal/config"
	"github.com/eleven413/playcall/pkg/logger"
	"github.com/eleven413/playcall/pkg/metrics"
)

// HTTP timeouts for the optional metrics listener.
const (
	metricsReadTimeout       = 10 * time.Second
	metricsWriteTimeout      = 10 * time.Second
	metricsReadHeaderTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	dataPath := flag.String("data", cfg.DataPath, "path to the play-by-play CSV")
	flag.Parse()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optional /metrics listener while the batch runs.
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadTimeout:       metricsReadTimeout,
			WriteTimeout:      metricsWriteTimeout,
			ReadHeaderTimeout: metricsReadHeaderTimeout,
		}
		go func() {
			loggerInstance.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				loggerInstance.Warn(ctx, "metrics server failed", logger.Error(err))
			}
		}()
		defer srv.Close()
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithDataPath(*dataPath),
		app.WithMinGameID(cfg.MinGameID),
		app.WithSeasonCutoffs(cfg.TrainBefore, cfg.TestAfter),
		app.WithEstimators(
			estimator.NewCART(
				estimator.WithCARTMaxDepth(int64(cfg.TreeMaxDepth)),
				estimator.WithCARTCriterion(cfg.TreeCriterion),
			),
			estimator.NewGradientBoosting(estimator.BoostParams{
				Rounds:       cfg.BoostRounds,
				LearningRate: cfg.BoostLearningRate,
				MaxDepth:     cfg.BoostMaxDepth,
				NumLeaves:    cfg.BoostNumLeaves,
			}),
			estimator.NewExtremeBoosting(estimator.BoostParams{
				Rounds:       cfg.XBoostRounds,
				LearningRate: cfg.XBoostLearningRate,
				MaxDepth:     cfg.XBoostMaxDepth,
				NumLeaves:    cfg.XBoostNumLeaves,
			}),
		),
	)

	report, err := svc.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "pipeline run failed", logger.Error(err))
		return 1
	}

	fmt.Print(report.String())
	if len(report.Failures) > 0 {
		return 1
	}
	return 0
}
