package feature

import (
	"fmt"
	"math"
)

// Yards-to-go buckets.
const (
	YTGShort = "short" // <= 4
	YTGMed   = "med"   // 4 < v <= 7
	YTGLong  = "long"  // > 7
)

// Score-differential buckets.
const (
	ScoreDownBig   = "down_big"   // < -7
	ScoreDownScore = "down_score" // -7 <= v < 0
	ScoreTied      = "tied"       // == 0
	ScoreUpScore   = "up_score"   // 0 < v <= 7
	ScoreUpBig     = "up_big"     // > 7
)

// Bucket thresholds. Boundary membership follows the closed/open sides
// above, never rounding.
const (
	ytgShortMax = 4.0
	ytgMedMax   = 7.0
	scoreMargin = 7.0
)

// BucketYardsToGo maps a yards-to-go value to its three-level bucket. The
// rules are total over the reals; only NaN escapes them, and that is a
// coding defect surfaced as ErrOutOfDomain.
func BucketYardsToGo(v float64) (string, error) {
	switch {
	case math.IsNaN(v):
		return "", fmt.Errorf("%w: yards-to-go %v", ErrOutOfDomain, v)
	case v <= ytgShortMax:
		return YTGShort, nil
	case v <= ytgMedMax:
		return YTGMed, nil
	default:
		return YTGLong, nil
	}
}

// BucketScoreDifferential maps a signed score differential to its five-level
// bucket. Total over the reals; NaN is ErrOutOfDomain.
func BucketScoreDifferential(v float64) (string, error) {
	switch {
	case math.IsNaN(v):
		return "", fmt.Errorf("%w: score differential %v", ErrOutOfDomain, v)
	case v < -scoreMargin:
		return ScoreDownBig, nil
	case v < 0:
		return ScoreDownScore, nil
	case v == 0:
		return ScoreTied, nil
	case v <= scoreMargin:
		return ScoreUpScore, nil
	default:
		return ScoreUpBig, nil
	}
}
