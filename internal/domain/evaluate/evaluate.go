// Package evaluate scores predicted labels against true labels: a 4x4
// confusion matrix, overall accuracy, and per-class accuracy. It is pure
// computation over already-materialized predictions, agnostic to which
// estimator produced them.
package evaluate

import (
	"fmt"
	"time"

	"github.com/eleven413/playcall/internal/domain/play"
)

// Confusion maps (predicted, actual) play-type pairs to observed counts.
// Every cell of the 4x4 grid exists, zero-filled where absent.
type Confusion struct {
	counts [play.NumTypes][play.NumTypes]int
	total  int
}

// NewConfusion builds a confusion matrix from equal-length ordered label
// sequences. Labels outside the four categories are ErrUnknownLabel.
func NewConfusion(predicted, actual []play.Type) (*Confusion, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("%w: %d predicted vs %d actual", ErrLengthMismatch, len(predicted), len(actual))
	}

	c := &Confusion{}
	for i := range predicted {
		p := predicted[i].Index()
		a := actual[i].Index()
		if p < 0 {
			return nil, fmt.Errorf("%w: predicted %q", ErrUnknownLabel, predicted[i])
		}
		if a < 0 {
			return nil, fmt.Errorf("%w: actual %q", ErrUnknownLabel, actual[i])
		}
		c.counts[p][a]++
		c.total++
	}
	return c, nil
}

// Count returns the number of rows predicted as p with actual label a.
func (c *Confusion) Count(p, a play.Type) int {
	return c.counts[p.Index()][a.Index()]
}

// Total returns the number of rows the matrix was built from.
func (c *Confusion) Total() int {
	return c.total
}

// Accuracy returns trace/total, or 0 for an empty matrix.
func (c *Confusion) Accuracy() float64 {
	if c.total == 0 {
		return 0
	}
	trace := 0
	for i := 0; i < play.NumTypes; i++ {
		trace += c.counts[i][i]
	}
	return float64(trace) / float64(c.total)
}

// PerClass returns, for each actual label with at least one row, the
// accuracy restricted to rows carrying that actual label.
func (c *Confusion) PerClass() map[play.Type]float64 {
	out := make(map[play.Type]float64, play.NumTypes)
	for a, label := range play.Types() {
		classTotal := 0
		for p := 0; p < play.NumTypes; p++ {
			classTotal += c.counts[p][a]
		}
		if classTotal == 0 {
			continue
		}
		out[label] = float64(c.counts[a][a]) / float64(classTotal)
	}
	return out
}

// Result is one model's evaluation. Durations are advisory wall-clock
// captures around the upstream fit and predict calls; they are compared
// between models, never asserted exactly.
type Result struct {
	Model           string
	FitDuration     time.Duration
	PredictDuration time.Duration
	Confusion       *Confusion
	Accuracy        float64
	PerClass        map[play.Type]float64
}

// NewResult evaluates predicted against actual for the named model.
func NewResult(model string, predicted, actual []play.Type, fit, predict time.Duration) (*Result, error) {
	c, err := NewConfusion(predicted, actual)
	if err != nil {
		return nil, err
	}
	return &Result{
		Model:           model,
		FitDuration:     fit,
		PredictDuration: predict,
		Confusion:       c,
		Accuracy:        c.Accuracy(),
		PerClass:        c.PerClass(),
	}, nil
}
