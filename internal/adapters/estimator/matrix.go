package estimator

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"

	"github.com/eleven413/playcall/internal/domain/feature"
)

// denseFromMatrix converts the engineered matrix to a gonum dense matrix
// for the scigo estimators.
func denseFromMatrix(m *feature.Matrix) (*mat.Dense, error) {
	if m.Len() == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(m.Names)
	data := make([]float64, 0, m.Len()*cols)
	for _, row := range m.Rows {
		data = append(data, row...)
	}
	return mat.NewDense(m.Len(), cols, data), nil
}

// denseFromLabels converts integer-coded labels to the n x 1 dense matrix
// the scigo estimators expect.
func denseFromLabels(labels []int) *mat.Dense {
	data := make([]float64, len(labels))
	for i, l := range labels {
		data[i] = float64(l)
	}
	return mat.NewDense(len(labels), 1, data)
}

// instancesFromMatrix converts the engineered matrix to golearn instances.
// Labels may be nil for prediction-time instances, in which case the class
// column is zero-filled.
func instancesFromMatrix(m *feature.Matrix, labels []int) (*base.DenseInstances, error) {
	if m.Len() == 0 {
		return nil, ErrEmptyMatrix
	}
	if labels != nil && len(labels) != m.Len() {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelCount, len(labels), m.Len())
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, 0, len(m.Names))
	for _, name := range m.Names {
		specs = append(specs, inst.AddAttribute(base.NewFloatAttribute(name)))
	}

	classAttr := base.NewFloatAttribute("play_type")
	classSpec := inst.AddAttribute(classAttr)
	if err := inst.AddClassAttribute(classAttr); err != nil {
		return nil, fmt.Errorf("estimator: add class attribute: %w", err)
	}
	if err := inst.Extend(m.Len()); err != nil {
		return nil, fmt.Errorf("estimator: allocate instances: %w", err)
	}

	for i, row := range m.Rows {
		for j, v := range row {
			inst.Set(specs[j], i, base.PackFloatToBytes(v))
		}
		label := 0.0
		if labels != nil {
			label = float64(labels[i])
		}
		inst.Set(classSpec, i, base.PackFloatToBytes(label))
	}

	return inst, nil
}
