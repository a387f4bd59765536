// Package cleanse restricts raw plays to the subset the models train on.
//
// The contract is "return the valid subset", not "validate": rows failing a
// predicate are dropped silently, with only aggregate counts reported for
// logging and metrics.
package cleanse

import (
	"math"

	"github.com/eleven413/playcall/internal/domain/play"
)

// Default lower bound on the season-encoding game id. Game ids embed the
// season in their leading digits, so this keeps seasons from 2015 onward.
const defaultMinGameID = 2015000000

// DropCounts accounts for rows removed by each predicate. A row is counted
// once, against the first predicate it fails.
type DropCounts struct {
	OldSeason   int // game id at or below the lower bound
	PlayType    int // play type outside the four accepted categories
	MissingData int // NaN in a required numeric field
	BadDown     int // down not an integer in 1..4
}

// Total returns the number of dropped rows.
func (d DropCounts) Total() int {
	return d.OldSeason + d.PlayType + d.MissingData + d.BadDown
}

// Option applies a configuration option to the Cleanser.
type Option func(*Cleanser)

// WithMinGameID sets the exclusive lower bound on game ids.
func WithMinGameID(id int64) Option {
	return func(c *Cleanser) {
		if id > 0 {
			c.minGameID = id
		}
	}
}

// Cleanser filters raw plays down to modelable rows.
type Cleanser struct {
	minGameID int64
}

// New constructs a Cleanser with default configuration.
func New(opts ...Option) *Cleanser {
	c := &Cleanser{minGameID: defaultMinGameID}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Filter returns the plays that pass every predicate: game id above the
// lower bound, play type one of the four accepted categories, and no
// missing numeric field. The input is not mutated.
func (c *Cleanser) Filter(raw []play.Raw) ([]play.Play, DropCounts) {
	out := make([]play.Play, 0, len(raw))
	var drops DropCounts

	for _, r := range raw {
		if r.GameID <= c.minGameID {
			drops.OldSeason++
			continue
		}
		playType, ok := play.ParseType(r.PlayType)
		if !ok {
			drops.PlayType++
			continue
		}
		if anyNaN(r.HalfSecondsRemaining, r.Down, r.YardsToGo, r.YardsToEndzone, r.ScoreDifferential, r.TimeoutsRemaining) {
			drops.MissingData++
			continue
		}
		if r.Down < 1 || r.Down > 4 || r.Down != math.Trunc(r.Down) {
			drops.BadDown++
			continue
		}
		out = append(out, play.Play{
			GameID:               r.GameID,
			PlayType:             playType,
			HalfSecondsRemaining: r.HalfSecondsRemaining,
			Down:                 int(r.Down),
			YardsToGo:            r.YardsToGo,
			YardsToEndzone:       r.YardsToEndzone,
			ScoreDifferential:    r.ScoreDifferential,
			TimeoutsRemaining:    int(r.TimeoutsRemaining),
		})
	}

	return out, drops
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
