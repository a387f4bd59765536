package split_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eleven413/playcall/internal/domain/feature"
	"github.com/eleven413/playcall/internal/domain/play"
	"github.com/eleven413/playcall/internal/domain/split"
)

func matrixWithIDs(ids ...int64) *feature.Matrix {
	m := &feature.Matrix{Names: []string{"x"}}
	for i, id := range ids {
		m.Rows = append(m.Rows, []float64{float64(i)})
		m.Labels = append(m.Labels, play.Types()[i%play.NumTypes])
		m.GameIDs = append(m.GameIDs, id)
	}
	return m
}

func TestBySeason(t *testing.T) {
	Convey("Given a splitter with a gap between the cutoffs", t, func() {
		s := split.New(
			split.WithTrainBefore(2018000000),
			split.WithTestAfter(2019000000),
		)

		Convey("When splitting rows across train, gap, and test bands", func() {
			m := matrixWithIDs(
				2016120400, // train
				2018101400, // gap: neither band
				2019091500, // test
				2017110500, // train
				2018123000, // gap
				2019122900, // test
			)
			train, test := s.BySeason(m)

			Convey("Then train and test take only their bands, in order", func() {
				So(train.Len(), ShouldEqual, 2)
				So(test.Len(), ShouldEqual, 2)
				So(train.Rows[0][0], ShouldEqual, 0)
				So(train.Rows[1][0], ShouldEqual, 3)
				So(test.Rows[0][0], ShouldEqual, 2)
				So(test.Rows[1][0], ShouldEqual, 5)
			})

			Convey("Then gap rows appear in neither set", func() {
				So(train.Len()+test.Len(), ShouldEqual, m.Len()-2)
			})

			Convey("Then game ids are removed from both outputs", func() {
				So(train.GameIDs, ShouldBeEmpty)
				So(test.GameIDs, ShouldBeEmpty)
			})

			Convey("Then labels stay row-aligned", func() {
				So(train.Labels, ShouldResemble, []play.Type{m.Labels[0], m.Labels[3]})
				So(test.Labels, ShouldResemble, []play.Type{m.Labels[2], m.Labels[5]})
			})

			Convey("Then the input matrix is untouched", func() {
				So(m.Len(), ShouldEqual, 6)
				So(m.GameIDs, ShouldHaveLength, 6)
			})
		})

		Convey("When a row sits exactly on a cutoff", func() {
			m := matrixWithIDs(2018000000, 2019000000)
			train, test := s.BySeason(m)

			Convey("Then the exclusive bounds leave it in neither set", func() {
				So(train.Len(), ShouldEqual, 0)
				So(test.Len(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given equal cutoffs", t, func() {
		s := split.New(
			split.WithTrainBefore(2019000000),
			split.WithTestAfter(2019000000),
		)

		Convey("Then the split is a strict partition of the id space", func() {
			ids := []int64{2015090100, 2017121700, 2019090500, 2019112800}
			train, test := s.BySeason(matrixWithIDs(ids...))

			So(train.Len(), ShouldEqual, 2)
			So(test.Len(), ShouldEqual, 2)
			So(train.Len()+test.Len(), ShouldEqual, len(ids))
		})
	})
}
