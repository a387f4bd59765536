// Package split partitions an engineered matrix into train and test sets by
// the season encoded in the game id.
package split

import (
	"github.com/eleven413/playcall/internal/domain/feature"
)

// Default cutoffs: train on seasons before 2019, test on 2019.
const (
	defaultTrainBefore = 2019000000
	defaultTestAfter   = 2019000000
)

// Option applies a configuration option to the Splitter.
type Option func(*Splitter)

// WithTrainBefore sets the exclusive upper bound on train game ids.
func WithTrainBefore(id int64) Option {
	return func(s *Splitter) {
		if id > 0 {
			s.trainBefore = id
		}
	}
}

// WithTestAfter sets the exclusive lower bound on test game ids.
func WithTestAfter(id int64) Option {
	return func(s *Splitter) {
		if id > 0 {
			s.testAfter = id
		}
	}
}

// Splitter assigns rows to train or test by game id. Rows whose id falls in
// neither band are dropped from both sets; an uncovered season is a gap,
// not an error.
type Splitter struct {
	trainBefore int64
	testAfter   int64
}

// New constructs a Splitter with default cutoffs.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		trainBefore: defaultTrainBefore,
		testAfter:   defaultTestAfter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BySeason returns the disjoint, order-preserving train and test subsets of
// m. Game ids are used only for the assignment and are absent from both
// outputs, so the identifier never leaks into the features. The input is
// not mutated.
func (s *Splitter) BySeason(m *feature.Matrix) (train, test *feature.Matrix) {
	train = emptyLike(m)
	test = emptyLike(m)

	for i, id := range m.GameIDs {
		switch {
		case id < s.trainBefore:
			appendRow(train, m, i)
		case id > s.testAfter:
			appendRow(test, m, i)
		}
	}

	return train, test
}

func emptyLike(m *feature.Matrix) *feature.Matrix {
	return &feature.Matrix{Names: m.Names}
}

func appendRow(dst, src *feature.Matrix, i int) {
	row := make([]float64, len(src.Rows[i]))
	copy(row, src.Rows[i])
	dst.Rows = append(dst.Rows, row)
	dst.Labels = append(dst.Labels, src.Labels[i])
}
