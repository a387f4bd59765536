// Package play contains the domain records shared by every pipeline stage.
package play

import "fmt"

// Type is the play-call category the pipeline predicts.
type Type string

// The four accepted play-call categories. The order of Types() is the
// canonical label order used by every estimator and the evaluator.
const (
	Run       Type = "run"
	Pass      Type = "pass"
	FieldGoal Type = "field_goal"
	Punt      Type = "punt"
)

// Types returns the canonical ordered label set.
func Types() []Type {
	return []Type{Run, Pass, FieldGoal, Punt}
}

// NumTypes is the number of play-call categories.
const NumTypes = 4

// ParseType maps a raw dataset value to a Type. The second return is false
// for anything outside the four accepted categories (kneels, spikes, no-plays
// and the like), which callers treat as a row to drop, not an error.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case Run, Pass, FieldGoal, Punt:
		return Type(s), true
	default:
		return "", false
	}
}

// Index returns the integer code for t in the canonical label order.
// Unknown types return -1; cleansed data never contains one.
func (t Type) Index() int {
	switch t {
	case Run:
		return 0
	case Pass:
		return 1
	case FieldGoal:
		return 2
	case Punt:
		return 3
	default:
		return -1
	}
}

// TypeFromIndex is the inverse of Index.
func TypeFromIndex(i int) (Type, error) {
	types := Types()
	if i < 0 || i >= len(types) {
		return "", fmt.Errorf("play: no type with index %d", i)
	}
	return types[i], nil
}

// Raw is one play as read from the dataset, before cleansing. Numeric fields
// that were empty or NA in the source hold NaN; PlayType keeps whatever
// string the source carried.
type Raw struct {
	GameID               int64
	PlayType             string
	HalfSecondsRemaining float64
	Down                 float64
	YardsToGo            float64
	YardsToEndzone       float64
	ScoreDifferential    float64
	TimeoutsRemaining    float64
}

// Play is one cleansed play. Every field is present and PlayType is one of
// the four accepted categories.
type Play struct {
	GameID               int64
	PlayType             Type
	HalfSecondsRemaining float64
	Down                 int
	YardsToGo            float64
	YardsToEndzone       float64
	ScoreDifferential    float64
	TimeoutsRemaining    int
}
