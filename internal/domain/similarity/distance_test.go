package similarity

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEuclideanDistance(t *testing.T) {
	Convey("Given feature vectors", t, func() {
		Convey("Then identical vectors are at distance zero", func() {
			So(euclideanDistance([]float64{1, 2, 3}, []float64{1, 2, 3}), ShouldEqual, 0)
		})
		Convey("Then the 3-4-5 triangle holds", func() {
			So(euclideanDistance([]float64{0, 0}, []float64{3, 4}), ShouldEqual, 5)
		})
	})
}

func TestCosineDistance(t *testing.T) {
	Convey("Given feature vectors", t, func() {
		Convey("Then parallel vectors are at distance zero", func() {
			So(cosineDistance([]float64{1, 1}, []float64{2, 2}), ShouldAlmostEqual, 0)
		})
		Convey("Then orthogonal vectors are at distance one", func() {
			So(cosineDistance([]float64{1, 0}, []float64{0, 1}), ShouldAlmostEqual, 1)
		})
		Convey("Then opposite vectors are at distance two", func() {
			So(cosineDistance([]float64{1, 0}, []float64{-1, 0}), ShouldAlmostEqual, 2)
		})
		Convey("Then a zero vector is treated as orthogonal", func() {
			So(cosineDistance([]float64{0, 0}, []float64{1, 2}), ShouldEqual, 1)
		})
	})
}
