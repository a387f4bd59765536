package feature

import (
	"fmt"
	"sort"
)

// DummyEncoder turns a k-level categorical field into k-1 indicator columns.
// The lexicographically first level is the dropped reference: it encodes as
// all zeros, which keeps the indicators linearly independent for downstream
// estimators.
type DummyEncoder struct {
	field  string
	levels []string // sorted; levels[0] is the reference
	index  map[string]int
}

// NewDummyEncoder builds an encoder for a field with the given levels.
// Level order in the input does not matter; levels are sorted internally.
func NewDummyEncoder(field string, levels []string) *DummyEncoder {
	sorted := make([]string, len(levels))
	copy(sorted, levels)
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, l := range sorted {
		index[l] = i
	}
	return &DummyEncoder{field: field, levels: sorted, index: index}
}

// Columns returns the indicator column names, one per non-reference level,
// named field_level.
func (e *DummyEncoder) Columns() []string {
	cols := make([]string, 0, len(e.levels)-1)
	for _, l := range e.levels[1:] {
		cols = append(cols, e.field+"_"+l)
	}
	return cols
}

// Reference returns the dropped reference level.
func (e *DummyEncoder) Reference() string {
	return e.levels[0]
}

// Encode returns the indicator vector for level: all zeros for the
// reference, exactly one 1 otherwise. A level the encoder was not built
// with is ErrUnknownLevel.
func (e *DummyEncoder) Encode(level string) ([]float64, error) {
	i, ok := e.index[level]
	if !ok {
		return nil, fmt.Errorf("%w: %s=%q", ErrUnknownLevel, e.field, level)
	}
	vec := make([]float64, len(e.levels)-1)
	if i > 0 {
		vec[i-1] = 1
	}
	return vec, nil
}
