package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating a manager with options", func() {
			m := NewManager(
				WithPrometheusRegistry(reg),
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithMetricsEnabled(false),
			)

			Convey("Then the configuration is applied", func() {
				So(m.namespace, ShouldEqual, "testns")
				So(m.subsystem, ShouldEqual, "testsub")
				So(m.histogramBuckets, ShouldResemble, []float64{1, 5, 10})
				So(m.enabled, ShouldBeFalse)
			})

			Convey("And all metrics are registered on the given registry", func() {
				m.queriesTotal.WithLabelValues("euclidean", "false").Inc()
				m.queryDuration.Observe(1.5)
				m.datasetPlayers.Set(42)

				families, err := reg.Gather()
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["testns_testsub_queries_total"], ShouldBeTrue)
				So(names["testns_testsub_query_duration_milliseconds"], ShouldBeTrue)
				So(names["testns_testsub_dataset_players"], ShouldBeTrue)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package helpers", func() {
			So(func() {
				RecordQuery("euclidean", true)
				RecordQuery("cosine", false)
				RecordQueryError("not_found")
				RecordQueryDuration(0.25)
				UpdateDatasetPlayers(100)
				UpdateDatasetFeatures(12)
				UpdateDatasetRowsDropped(2)
				UpdateDatasetLoadDuration(35)
				RecordHTTPRequest("similar", "GET", "200")
				RecordHTTPRequestDuration("similar", "GET", "200", 1.2)
				RecordErrorByEndpoint("similar", "GET", "not_found")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(8)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("When gathering the shared registry", func() {
			RecordQuery("euclidean", false)

			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)

			found := false
			for _, f := range families {
				if f.GetName() == "courtmate_similarity_queries_total" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}
