// Package feature turns cleansed plays into the numeric-only matrix the
// estimators consume: bucketing of the two continuous situation fields,
// then dummy encoding of every categorical field with a reference drop.
package feature

import (
	"strconv"

	"github.com/eleven413/playcall/internal/domain/play"
)

// Matrix is the engineered row set. Rows, Labels and GameIDs are parallel;
// GameIDs exist only for the season split and never appear as a column.
type Matrix struct {
	Names   []string
	Rows    [][]float64
	Labels  []play.Type
	GameIDs []int64
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	return len(m.Rows)
}

// LabelCodes returns the labels as integer codes in the canonical order.
func (m *Matrix) LabelCodes() []int {
	codes := make([]int, len(m.Labels))
	for i, l := range m.Labels {
		codes[i] = l.Index()
	}
	return codes
}

// Deriver builds feature matrices from cleansed plays. Encoder layout is
// fixed at construction so every matrix it produces has identical columns.
type Deriver struct {
	down  *DummyEncoder
	ytg   *DummyEncoder
	score *DummyEncoder
}

// NewDeriver constructs a Deriver with the fixed bucket and encoding rules.
func NewDeriver() *Deriver {
	downLevels := make([]string, 0, 4)
	for d := 1; d <= 4; d++ {
		downLevels = append(downLevels, strconv.Itoa(d))
	}
	return &Deriver{
		down:  NewDummyEncoder("down", downLevels),
		ytg:   NewDummyEncoder("ytg", []string{YTGShort, YTGMed, YTGLong}),
		score: NewDummyEncoder("score", []string{ScoreDownBig, ScoreDownScore, ScoreTied, ScoreUpScore, ScoreUpBig}),
	}
}

// Columns returns the column names of every matrix this Deriver produces:
// the three continuous fields first, then the indicator columns.
func (d *Deriver) Columns() []string {
	names := []string{"half_seconds_remaining", "yards_to_endzone", "timeouts_remaining"}
	names = append(names, d.down.Columns()...)
	names = append(names, d.ytg.Columns()...)
	names = append(names, d.score.Columns()...)
	return names
}

// Derive produces the engineered matrix for plays. Each transformation is
// pure; the input is not mutated. A value outside every bucket range
// returns ErrOutOfDomain and no matrix.
func (d *Deriver) Derive(plays []play.Play) (*Matrix, error) {
	m := &Matrix{
		Names:   d.Columns(),
		Rows:    make([][]float64, 0, len(plays)),
		Labels:  make([]play.Type, 0, len(plays)),
		GameIDs: make([]int64, 0, len(plays)),
	}

	for _, p := range plays {
		row := make([]float64, 0, len(m.Names))
		row = append(row, p.HalfSecondsRemaining, p.YardsToEndzone, float64(p.TimeoutsRemaining))

		downVec, err := d.down.Encode(strconv.Itoa(p.Down))
		if err != nil {
			return nil, err
		}
		row = append(row, downVec...)

		ytgBucket, err := BucketYardsToGo(p.YardsToGo)
		if err != nil {
			return nil, err
		}
		ytgVec, err := d.ytg.Encode(ytgBucket)
		if err != nil {
			return nil, err
		}
		row = append(row, ytgVec...)

		scoreBucket, err := BucketScoreDifferential(p.ScoreDifferential)
		if err != nil {
			return nil, err
		}
		scoreVec, err := d.score.Encode(scoreBucket)
		if err != nil {
			return nil, err
		}
		row = append(row, scoreVec...)

		m.Rows = append(m.Rows, row)
		m.Labels = append(m.Labels, p.PlayType)
		m.GameIDs = append(m.GameIDs, p.GameID)
	}

	return m, nil
}
