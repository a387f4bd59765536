package evaluate_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eleven413/playcall/internal/domain/evaluate"
	"github.com/eleven413/playcall/internal/domain/play"
)

func TestConfusion(t *testing.T) {
	Convey("Given predictions against true labels", t, func() {
		actual := []play.Type{
			play.Run, play.Pass, play.Pass, play.Punt, play.FieldGoal,
			play.Run, play.Pass, play.Run,
		}
		predicted := []play.Type{
			play.Run, play.Pass, play.Run, play.Punt, play.Punt,
			play.Run, play.Pass, play.Pass,
		}

		c, err := evaluate.NewConfusion(predicted, actual)
		So(err, ShouldBeNil)

		Convey("Then cell counts match the observations", func() {
			So(c.Count(play.Run, play.Run), ShouldEqual, 2)
			So(c.Count(play.Pass, play.Pass), ShouldEqual, 2)
			So(c.Count(play.Run, play.Pass), ShouldEqual, 1)
			So(c.Count(play.Pass, play.Run), ShouldEqual, 1)
			So(c.Count(play.Punt, play.Punt), ShouldEqual, 1)
			So(c.Count(play.Punt, play.FieldGoal), ShouldEqual, 1)
			So(c.Count(play.FieldGoal, play.FieldGoal), ShouldEqual, 0) // zero-filled cell
		})

		Convey("Then all cells sum to the number of rows", func() {
			total := 0
			for _, p := range play.Types() {
				for _, a := range play.Types() {
					total += c.Count(p, a)
				}
			}
			So(total, ShouldEqual, len(actual))
			So(c.Total(), ShouldEqual, len(actual))
		})

		Convey("Then accuracy is the diagonal over the total", func() {
			// diagonal: run 2 + pass 2 + punt 1 = 5 of 8
			So(c.Accuracy(), ShouldAlmostEqual, 5.0/8.0)
		})

		Convey("Then per-class accuracy restricts to each actual label", func() {
			perClass := c.PerClass()
			So(perClass[play.Run], ShouldAlmostEqual, 2.0/3.0)
			So(perClass[play.Pass], ShouldAlmostEqual, 2.0/3.0)
			So(perClass[play.FieldGoal], ShouldAlmostEqual, 0.0)
			So(perClass[play.Punt], ShouldAlmostEqual, 1.0)
		})
	})

	Convey("Given mismatched sequence lengths", t, func() {
		_, err := evaluate.NewConfusion(
			[]play.Type{play.Run},
			[]play.Type{play.Run, play.Pass},
		)

		Convey("Then construction fails", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, evaluate.ErrLengthMismatch), ShouldBeTrue)
		})
	})

	Convey("Given a label outside the four categories", t, func() {
		_, err := evaluate.NewConfusion(
			[]play.Type{play.Type("kickoff")},
			[]play.Type{play.Run},
		)

		Convey("Then construction fails", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, evaluate.ErrUnknownLabel), ShouldBeTrue)
		})
	})

	Convey("Given no rows", t, func() {
		c, err := evaluate.NewConfusion(nil, nil)

		Convey("Then the matrix is empty with zero accuracy", func() {
			So(err, ShouldBeNil)
			So(c.Total(), ShouldEqual, 0)
			So(c.Accuracy(), ShouldEqual, 0)
			So(c.PerClass(), ShouldBeEmpty)
		})
	})
}

func TestConstantPredictorScenario(t *testing.T) {
	Convey("Given a predictor that always answers pass", t, func() {
		actual := []play.Type{
			play.Pass, play.Run, play.Pass, play.Punt,
			play.Pass, play.FieldGoal, play.Run, play.Pass,
		}
		predicted := make([]play.Type, len(actual))
		for i := range predicted {
			predicted[i] = play.Pass
		}

		c, err := evaluate.NewConfusion(predicted, actual)
		So(err, ShouldBeNil)

		Convey("Then accuracy equals the pass share of the test set", func() {
			So(c.Accuracy(), ShouldAlmostEqual, 4.0/8.0)
		})

		Convey("Then only the pass row of the matrix is populated", func() {
			rowSum := 0
			for _, a := range play.Types() {
				rowSum += c.Count(play.Pass, a)
			}
			So(rowSum, ShouldEqual, len(actual))

			for _, p := range []play.Type{play.Run, play.FieldGoal, play.Punt} {
				for _, a := range play.Types() {
					So(c.Count(p, a), ShouldEqual, 0)
				}
			}
		})
	})
}

func TestNewResult(t *testing.T) {
	Convey("Given equal predicted and actual labels", t, func() {
		labels := []play.Type{play.Run, play.Pass, play.Punt}
		res, err := evaluate.NewResult("stub", labels, labels, 5*time.Millisecond, time.Millisecond)

		Convey("Then the result carries perfect accuracy and the durations", func() {
			So(err, ShouldBeNil)
			So(res.Model, ShouldEqual, "stub")
			So(res.Accuracy, ShouldEqual, 1.0)
			So(res.Confusion.Total(), ShouldEqual, 3)
			// Durations are advisory; only their relative order is meaningful.
			So(res.FitDuration, ShouldBeGreaterThan, res.PredictDuration)
		})
	})
}
