// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults -> optional YAML file -> env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataPath points at the play-by-play CSV.
	DataPath string `koanf:"data_path"`

	// MetricsAddr enables a /metrics listener while the pipeline runs.
	// Empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// MinGameID is the exclusive lower bound on the season-encoding game
	// id; rows at or below it are dropped during cleansing.
	MinGameID int64 `koanf:"min_game_id"`

	// TrainBefore and TestAfter are the season-split cutoffs: train takes
	// ids below TrainBefore, test takes ids above TestAfter, and ids in
	// between are skipped.
	TrainBefore int64 `koanf:"train_before"`
	TestAfter   int64 `koanf:"test_after"`

	// Decision tree hyperparameters.
	TreeMaxDepth  int    `koanf:"tree_max_depth"`
	TreeCriterion string `koanf:"tree_criterion"`

	// Standard gradient-boosting hyperparameters.
	BoostRounds       int     `koanf:"boost_rounds"`
	BoostLearningRate float64 `koanf:"boost_learning_rate"`
	BoostMaxDepth     int     `koanf:"boost_max_depth"`
	BoostNumLeaves    int     `koanf:"boost_num_leaves"`

	// Extreme gradient-boosting hyperparameters.
	XBoostRounds       int     `koanf:"xboost_rounds"`
	XBoostLearningRate float64 `koanf:"xboost_learning_rate"`
	XBoostMaxDepth     int     `koanf:"xboost_max_depth"`
	XBoostNumLeaves    int     `koanf:"xboost_num_leaves"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		DataPath:    "plays.csv",
		MetricsAddr: "",
		MinGameID:   2015000000,
		TrainBefore: 2019000000,
		TestAfter:   2019000000,

		TreeMaxDepth:  8,
		TreeCriterion: "gini",

		BoostRounds:       100,
		BoostLearningRate: 0.1,
		BoostMaxDepth:     4,
		BoostNumLeaves:    15,

		XBoostRounds:       300,
		XBoostLearningRate: 0.05,
		XBoostMaxDepth:     6,
		XBoostNumLeaves:    31,
	}
}
