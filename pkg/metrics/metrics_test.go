package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording report metrics", func() {
			Convey("Then it should record served reports", func() {
				So(func() {
					RecordReportServed("summary")
					RecordReportServed("breakdown")
					RecordReportServed("table")
				}, ShouldNotPanic)
			})

			Convey("And it should record filtered record counts", func() {
				So(func() {
					RecordFilteredRecords(0)
					RecordFilteredRecords(250)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording fetch metrics", func() {
			Convey("Then it should record attempts and failures", func() {
				So(func() {
					RecordFetchAttempt()
					RecordFetchFailure("transport")
					RecordFetchFailure("status")
					RecordFetchFailure("decode")
					RecordFetchFallback()
					RecordFetchedRecords(42)
					RecordFetchDuration(120.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and errors", func() {
				So(func() {
					RecordHTTPRequest("summary", "GET", "200")
					RecordHTTPRequestDuration("summary", "GET", "200", 15.0)
					RecordHTTPError("table", "client_error")
					RecordAuthRejection()
				}, ShouldNotPanic)
			})
		})

		Convey("When updating system metrics", func() {
			Convey("Then it should update gauges", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024)
					UpdateSystemGoroutineCount(16)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordReportServed("summary")
			families, err := GetRegistry().Gather()

			Convey("Then the registered metrics are exposed", func() {
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
