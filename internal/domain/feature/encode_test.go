package feature_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eleven413/playcall/internal/domain/feature"
)

func TestDummyEncoder(t *testing.T) {
	Convey("Given an encoder for a five-level field", t, func() {
		levels := []string{"tied", "up_score", "down_big", "up_big", "down_score"}
		enc := feature.NewDummyEncoder("score", levels)

		Convey("Then it emits k-1 columns with the first level dropped", func() {
			So(enc.Columns(), ShouldHaveLength, len(levels)-1)
			So(enc.Reference(), ShouldEqual, "down_big") // lexicographically first
			So(enc.Columns(), ShouldResemble, []string{
				"score_down_score", "score_tied", "score_up_big", "score_up_score",
			})
		})

		Convey("Then the reference level encodes as all zeros", func() {
			vec, err := enc.Encode("down_big")
			So(err, ShouldBeNil)
			So(vec, ShouldResemble, []float64{0, 0, 0, 0})
		})

		Convey("Then every other level sets exactly one indicator", func() {
			for _, level := range []string{"down_score", "tied", "up_big", "up_score"} {
				vec, err := enc.Encode(level)
				So(err, ShouldBeNil)
				ones := 0
				for _, v := range vec {
					So(v == 0 || v == 1, ShouldBeTrue)
					if v == 1 {
						ones++
					}
				}
				So(ones, ShouldEqual, 1)
			}
		})

		Convey("Then distinct levels encode distinctly", func() {
			seen := map[string]bool{}
			for _, level := range levels {
				vec, err := enc.Encode(level)
				So(err, ShouldBeNil)
				key := ""
				for _, v := range vec {
					if v == 1 {
						key += "1"
					} else {
						key += "0"
					}
				}
				So(seen[key], ShouldBeFalse)
				seen[key] = true
			}
		})

		Convey("Then an unknown level is an error", func() {
			_, err := enc.Encode("up_huge")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, feature.ErrUnknownLevel), ShouldBeTrue)
		})
	})
}
