package estimator

import (
	"context"
	"fmt"

	"github.com/YuminosukeSato/scigo/sklearn/lightgbm"
	"gonum.org/v1/gonum/mat"

	"github.com/eleven413/playcall/internal/domain/feature"
	"github.com/eleven413/playcall/internal/domain/play"
)

// BoostParams are the gradient-boosting hyperparameters passed straight
// through to the external trainer.
type BoostParams struct {
	Rounds       int
	LearningRate float64
	MaxDepth     int
	NumLeaves    int
}

// Standard and extreme tuning defaults. The extreme configuration trades
// learning rate for rounds and depth, mirroring the usual GBM-vs-XGBoost
// pairing of tree boosters.
var (
	DefaultBoostParams = BoostParams{
		Rounds:       100,
		LearningRate: 0.1,
		MaxDepth:     4,
		NumLeaves:    15,
	}
	DefaultExtremeParams = BoostParams{
		Rounds:       300,
		LearningRate: 0.05,
		MaxDepth:     6,
		NumLeaves:    31,
	}
)

// Boosting is a gradient-boosting estimator backed by the scigo LightGBM
// trainer. It trains one binary one-vs-rest classifier per play type and
// predicts by the highest positive-class probability; the library's
// multiclass softmax objective mistrains, so only its binary objective is
// used. The standard and extreme models are two instances of this adapter
// with different names and tuning.
type Boosting struct {
	name   string
	params BoostParams

	// One binary model per class in canonical label order. A class absent
	// from the training labels has a nil entry and never wins the argmax.
	models []*lightgbm.LGBMClassifier

	// constant is the sole training label when only one class was seen,
	// else -1. The trainer needs both a positive and a negative side, so
	// a single-class fit degenerates to a constant predictor.
	constant int
}

// NewGradientBoosting constructs the standard boosting estimator.
func NewGradientBoosting(params BoostParams) *Boosting {
	return &Boosting{name: "gradient_boost", params: withBoostDefaults(params, DefaultBoostParams), constant: -1}
}

// NewExtremeBoosting constructs the extreme boosting estimator.
func NewExtremeBoosting(params BoostParams) *Boosting {
	return &Boosting{name: "extreme_boost", params: withBoostDefaults(params, DefaultExtremeParams), constant: -1}
}

func withBoostDefaults(p, def BoostParams) BoostParams {
	if p.Rounds <= 0 {
		p.Rounds = def.Rounds
	}
	if p.LearningRate <= 0 {
		p.LearningRate = def.LearningRate
	}
	if p.MaxDepth <= 0 {
		p.MaxDepth = def.MaxDepth
	}
	if p.NumLeaves <= 0 {
		p.NumLeaves = def.NumLeaves
	}
	return p
}

// Name implements Estimator.
func (b *Boosting) Name() string { return b.name }

// Fit implements Estimator.
func (b *Boosting) Fit(ctx context.Context, train *feature.Matrix, labels []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(labels) != train.Len() {
		return fmt.Errorf("%w: %d labels for %d rows", ErrLabelCount, len(labels), train.Len())
	}
	x, err := denseFromMatrix(train)
	if err != nil {
		return err
	}

	models := make([]*lightgbm.LGBMClassifier, play.NumTypes)
	b.constant = soleLabel(labels)
	if b.constant >= 0 {
		b.models = models
		return nil
	}

	for class := 0; class < play.NumTypes; class++ {
		y, present := binaryLabels(labels, class)
		if !present {
			continue
		}

		model := lightgbm.NewLGBMClassifier().
			WithNumIterations(b.params.Rounds).
			WithLearningRate(b.params.LearningRate).
			WithMaxDepth(b.params.MaxDepth).
			WithNumLeaves(b.params.NumLeaves)
		if err := model.Fit(x, y); err != nil {
			return fmt.Errorf("%s fit class %d: %w", b.name, class, err)
		}
		models[class] = model
	}

	b.models = models
	return nil
}

// binaryLabels builds the one-vs-rest target for class: 1 where the label
// is class, 0 elsewhere. The second return is false when no row carries
// the class, in which case there is nothing to train.
func binaryLabels(labels []int, class int) (*mat.Dense, bool) {
	data := make([]float64, len(labels))
	present := false
	for i, l := range labels {
		if l == class {
			data[i] = 1
			present = true
		}
	}
	return mat.NewDense(len(labels), 1, data), present
}

// soleLabel returns the single distinct label in labels, or -1 when there
// are zero or several.
func soleLabel(labels []int) int {
	if len(labels) == 0 {
		return -1
	}
	for _, l := range labels[1:] {
		if l != labels[0] {
			return -1
		}
	}
	return labels[0]
}

// Predict implements Estimator.
func (b *Boosting) Predict(ctx context.Context, test *feature.Matrix) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.models == nil {
		return nil, ErrNotFitted
	}
	x, err := denseFromMatrix(test)
	if err != nil {
		return nil, err
	}

	if b.constant >= 0 {
		out := make([]int, test.Len())
		for i := range out {
			out[i] = b.constant
		}
		return out, nil
	}

	// scores[i][class] is the positive-class probability of the class's
	// one-vs-rest model for row i.
	scores := make([][]float64, test.Len())
	for i := range scores {
		scores[i] = make([]float64, play.NumTypes)
	}
	for class, model := range b.models {
		if model == nil {
			continue
		}
		proba, err := model.PredictProba(x)
		if err != nil {
			return nil, fmt.Errorf("%s predict class %d: %w", b.name, class, err)
		}
		for i := range scores {
			scores[i][class] = proba.At(i, 1)
		}
	}

	out := make([]int, test.Len())
	for i, rowScores := range scores {
		best := 0
		for class, s := range rowScores {
			if s > rowScores[best] {
				best = class
			}
		}
		out[i] = best
	}
	return out, nil
}
