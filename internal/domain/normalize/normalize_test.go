package normalize_test

import (
	"testing"

	"github.com/courtmate/courtmate/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFit(t *testing.T) {
	Convey("Given a column-major matrix", t, func() {
		Convey("When fitting a simple column", func() {
			p, err := normalize.Fit([][]float64{{2, 4, 6}})

			Convey("Then mean and stddev are the population statistics", func() {
				So(err, ShouldBeNil)
				So(p.Mean[0], ShouldEqual, 4)
				So(p.StdDev[0], ShouldAlmostEqual, 1.632993161855452)
				So(p.NumColumns(), ShouldEqual, 1)
			})
		})

		Convey("When fitting with no columns", func() {
			_, err := normalize.Fit(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("When fitting with empty columns", func() {
			_, err := normalize.Fit([][]float64{{}})
			So(err, ShouldNotBeNil)
		})

		Convey("When columns are ragged", func() {
			_, err := normalize.Fit([][]float64{{1, 2, 3}, {1, 2}})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTransform(t *testing.T) {
	Convey("Given fitted parameters", t, func() {
		p, err := normalize.Fit([][]float64{{2, 4, 6}, {10, 10, 10}})
		So(err, ShouldBeNil)

		Convey("When transforming a row", func() {
			out := p.Transform([]float64{4, 10})

			Convey("Then the mean maps to zero", func() {
				So(out[0], ShouldAlmostEqual, 0)
			})

			Convey("Then a zero-variance column maps to zero", func() {
				So(out[1], ShouldEqual, 0)
			})
		})

		Convey("When transforming a value one stddev above the mean", func() {
			out := p.Transform([]float64{4 + p.StdDev[0], 10})
			So(out[0], ShouldAlmostEqual, 1)
		})

		Convey("When transforming a whole matrix", func() {
			rows := p.TransformAll([][]float64{{2, 10}, {6, 10}})

			Convey("Then rows are symmetric around the mean", func() {
				So(len(rows), ShouldEqual, 2)
				So(rows[0][0], ShouldAlmostEqual, -rows[1][0])
			})
		})
	})
}
