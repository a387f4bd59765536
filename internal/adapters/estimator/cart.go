package estimator

import (
	"context"
	"fmt"

	"github.com/sjwhitworth/golearn/trees"

	"github.com/eleven413/playcall/internal/domain/feature"
	"github.com/eleven413/playcall/internal/domain/play"
)

// Default CART hyperparameters.
const (
	defaultCARTCriterion = "gini"
	defaultCARTMaxDepth  = 8
)

// CARTOption applies a configuration option to the CART estimator.
type CARTOption func(*CART)

// WithCARTMaxDepth sets the maximum tree depth. Non-positive means no limit.
func WithCARTMaxDepth(depth int64) CARTOption {
	return func(c *CART) {
		c.maxDepth = depth
	}
}

// WithCARTCriterion sets the split criterion, "gini" or "entropy".
func WithCARTCriterion(criterion string) CARTOption {
	return func(c *CART) {
		if criterion == "gini" || criterion == "entropy" {
			c.criterion = criterion
		}
	}
}

// CART is the plain decision tree estimator, backed by golearn's CART
// classifier over dense instances.
type CART struct {
	criterion string
	maxDepth  int64
	tree      *trees.CARTDecisionTreeClassifier
}

// NewCART constructs a CART estimator with default hyperparameters.
func NewCART(opts ...CARTOption) *CART {
	c := &CART{
		criterion: defaultCARTCriterion,
		maxDepth:  defaultCARTMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Estimator.
func (c *CART) Name() string { return "decision_tree" }

// Fit implements Estimator.
func (c *CART) Fit(ctx context.Context, train *feature.Matrix, labels []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	inst, err := instancesFromMatrix(train, labels)
	if err != nil {
		return err
	}

	classLabels := make([]int64, play.NumTypes)
	for i := range classLabels {
		classLabels[i] = int64(i)
	}
	tree := trees.NewDecisionTreeClassifier(c.criterion, c.maxDepth, classLabels)
	if err := tree.Fit(inst); err != nil {
		return fmt.Errorf("cart fit: %w", err)
	}
	c.tree = tree
	return nil
}

// Predict implements Estimator.
func (c *CART) Predict(ctx context.Context, test *feature.Matrix) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.tree == nil {
		return nil, ErrNotFitted
	}
	inst, err := instancesFromMatrix(test, nil)
	if err != nil {
		return nil, err
	}

	preds := c.tree.Predict(inst)
	out := make([]int, len(preds))
	for i, p := range preds {
		out[i] = int(p)
	}
	return out, nil
}
