// Package estimator is the boundary to the external classifiers. The
// pipeline talks to every model through the same fit/predict contract and
// is agnostic to which concrete algorithm sits behind it; the evaluation
// harness works identically for all of them.
package estimator

import (
	"context"

	"github.com/eleven413/playcall/internal/domain/feature"
)

// Estimator is a trainable classifier over an engineered feature matrix.
// Labels are integer codes in the canonical play-type order. A failed Fit
// or Predict propagates unchanged to the caller; there are no retries.
type Estimator interface {
	// Name identifies the model in reports and logs.
	Name() string

	// Fit trains on the matrix with its integer-coded labels.
	Fit(ctx context.Context, train *feature.Matrix, labels []int) error

	// Predict returns one integer-coded label per test row, aligned
	// row-for-row with the input.
	Predict(ctx context.Context, test *feature.Matrix) ([]int, error)
}

// Constant is a trivial estimator that always predicts the same class. It
// exists for harness tests and as a baseline, not for modeling.
type Constant struct {
	// Class is the integer-coded label returned for every row.
	Class int
}

// Name implements Estimator.
func (c *Constant) Name() string { return "constant" }

// Fit implements Estimator. There is nothing to learn.
func (c *Constant) Fit(ctx context.Context, train *feature.Matrix, labels []int) error {
	return nil
}

// Predict implements Estimator.
func (c *Constant) Predict(ctx context.Context, test *feature.Matrix) ([]int, error) {
	out := make([]int, test.Len())
	for i := range out {
		out[i] = c.Class
	}
	return out, nil
}
