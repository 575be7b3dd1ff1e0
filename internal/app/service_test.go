package service_test

import (
	"context"
	"testing"

	service "github.com/blinkr/disburse/internal/app"
	"github.com/blinkr/disburse/internal/domain/filter"
	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/window"
	"github.com/blinkr/disburse/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// fakeFetcher returns a canned raw sequence and records the windows it saw.
type fakeFetcher struct {
	raws    []record.Raw
	windows []window.Window
}

func (f *fakeFetcher) Fetch(_ context.Context, w window.Window) ([]record.Raw, error) {
	f.windows = append(f.windows, w)
	return f.raws, nil
}

func sampleRaws() []record.Raw {
	return []record.Raw{
		{
			"disbursal_date":   "2025-08-10",
			"full_name":        "John Doe",
			"sanction_amount":  50000.0,
			"disbursed_amount": 45000.0,
			"state":            "Delhi",
			"city":             "New Delhi",
			"tenure":           12.0,
			"reloan":           false,
			"lead_closed":      false,
		},
		{
			"disbursal_date":   "2025-08-11",
			"full_name":        "Jane Smith",
			"sanction_amount":  80000.0,
			"disbursed_amount": 70000.0,
			"state":            "Haryana",
			"city":             "Gurgaon",
			"tenure":           6.0,
			"reloan":           true,
			"lead_closed":      true,
		},
		{
			"disbursal_date":   "2025-08-12",
			"full_name":        "Amy Lee",
			"sanction_amount":  30000.0,
			"disbursed_amount": 25000.0,
			"state":            "Delhi",
			"city":             "New Delhi",
			"tenure":           12.0,
			"reloan":           false,
			"lead_closed":      false,
		},
	}
}

func startedService(f *fakeFetcher, opts ...service.Option) *service.Service {
	svc := service.New(append([]service.Option{service.WithFetcher(f)}, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service with no fetcher and no upstream URL", t, func() {
		svc := service.New()

		Convey("When starting", func() {
			err := svc.Start(context.Background())

			Convey("Then start fails", func() {
				So(err, ShouldEqual, service.ErrNoFetcher)
			})
		})
	})

	Convey("Given a service with an injected fetcher", t, func() {
		svc := service.New(service.WithFetcher(&fakeFetcher{}))

		Convey("When starting twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)

			Convey("Then stats report it as started", func() {
				So(svc.GetStats()["started"], ShouldBeTrue)
			})

			Convey("And stop flips the state back", func() {
				svc.Stop()
				So(svc.GetStats()["started"], ShouldBeFalse)
			})
		})
	})
}

func TestServiceSummary(t *testing.T) {
	Convey("Given a started service over sample records", t, func() {
		fetcher := &fakeFetcher{raws: sampleRaws()}
		svc := startedService(fetcher)
		w, _ := window.Parse("2025-08-01", "2025-08-31")

		Convey("When requesting a summary for a real window", func() {
			sum, err := svc.Summary(context.Background(), w, filter.Spec{})

			Convey("Then the totals cover all records", func() {
				So(err, ShouldBeNil)
				So(sum.TotalApplications, ShouldEqual, 3)
				So(sum.TotalDisbursedAmount, ShouldEqual, 140000)
			})
		})

		Convey("When requesting a summary for a zero window", func() {
			sum, err := svc.Summary(context.Background(), window.Window{}, filter.Spec{})

			Convey("Then a zeroed summary is returned without touching the fetcher", func() {
				So(err, ShouldBeNil)
				So(sum.TotalApplications, ShouldEqual, 0)
				So(fetcher.windows, ShouldBeEmpty)
			})
		})

		Convey("When requesting a summary with a search term", func() {
			sum, err := svc.Summary(context.Background(), w, filter.Spec{Search: "jo"})

			Convey("Then the search term does not narrow the totals", func() {
				So(err, ShouldBeNil)
				So(sum.TotalApplications, ShouldEqual, 3)
				So(sum.TotalDisbursedAmount, ShouldEqual, 140000)
			})
		})

		Convey("When requesting a summary with a filter", func() {
			sum, err := svc.Summary(context.Background(), w, filter.Spec{State: "Delhi"})

			Convey("Then only matching records are counted", func() {
				So(err, ShouldBeNil)
				So(sum.TotalApplications, ShouldEqual, 2)
				So(sum.TotalDisbursedAmount, ShouldEqual, 70000)
			})
		})
	})
}

func TestServiceBreakdown(t *testing.T) {
	Convey("Given a started service over sample records", t, func() {
		svc := startedService(&fakeFetcher{raws: sampleRaws()})
		w, _ := window.Parse("2025-08-01", "2025-08-31")

		Convey("When requesting the breakdown", func() {
			bd, err := svc.Breakdown(context.Background(), w, filter.Spec{})

			Convey("Then both groupings are present, largest first", func() {
				So(err, ShouldBeNil)
				So(bd.StateData, ShouldHaveLength, 2)
				So(bd.StateData[0].Name, ShouldEqual, "Haryana")
				So(bd.StateData[0].Value, ShouldEqual, 70000)
				So(bd.CityData, ShouldHaveLength, 2)
			})
		})

		Convey("When requesting the breakdown with a search term", func() {
			bd, err := svc.Breakdown(context.Background(), w, filter.Spec{Search: "jo"})

			Convey("Then the search term does not narrow the groupings", func() {
				So(err, ShouldBeNil)
				So(bd.StateData, ShouldHaveLength, 2)
				So(bd.CityData, ShouldHaveLength, 2)
			})
		})
	})
}

func TestServiceTable(t *testing.T) {
	Convey("Given a started service with custom pagination bounds", t, func() {
		svc := startedService(&fakeFetcher{raws: sampleRaws()},
			service.WithDefaultPerPage(2),
			service.WithMaxPerPage(2),
		)
		w, _ := window.Parse("2025-08-01", "2025-08-31")

		Convey("When requesting a table without a page size", func() {
			tbl, err := svc.Table(context.Background(), w, filter.Spec{}, 1, 0)

			Convey("Then the default page size applies", func() {
				So(err, ShouldBeNil)
				So(tbl.PerPage, ShouldEqual, 2)
				So(tbl.TotalItems, ShouldEqual, 3)
				So(tbl.TotalPages, ShouldEqual, 2)
				So(tbl.Applications, ShouldHaveLength, 2)
			})
		})

		Convey("When requesting a page size above the cap", func() {
			tbl, err := svc.Table(context.Background(), w, filter.Spec{}, 1, 500)

			Convey("Then the size is clamped to the cap", func() {
				So(err, ShouldBeNil)
				So(tbl.PerPage, ShouldEqual, 2)
			})
		})

		Convey("When requesting a page past the end", func() {
			tbl, err := svc.Table(context.Background(), w, filter.Spec{}, 99, 2)

			Convey("Then the last page is served", func() {
				So(err, ShouldBeNil)
				So(tbl.CurrentPage, ShouldEqual, 2)
				So(tbl.Applications, ShouldHaveLength, 1)
				So(tbl.Applications[0].ID, ShouldEqual, 3)
			})
		})
	})
}

func TestServiceDistinctValues(t *testing.T) {
	Convey("Given a started service over sample records", t, func() {
		svc := startedService(&fakeFetcher{raws: sampleRaws()})
		w, _ := window.Parse("2025-08-01", "2025-08-31")

		Convey("When requesting distinct values", func() {
			opts, err := svc.DistinctValues(context.Background(), w, filter.Spec{})

			Convey("Then the options are deduplicated and sorted", func() {
				So(err, ShouldBeNil)
				So(opts.Tenures, ShouldResemble, []int{6, 12})
				So(opts.States, ShouldResemble, []string{"Delhi", "Haryana"})
				So(opts.Cities, ShouldResemble, []string{"Gurgaon", "New Delhi"})
			})
		})

		Convey("When requesting distinct values with a search term", func() {
			opts, err := svc.DistinctValues(context.Background(), w, filter.Spec{Search: "john"})

			Convey("Then the search term does not narrow the options", func() {
				So(err, ShouldBeNil)
				So(opts.States, ShouldResemble, []string{"Delhi", "Haryana"})
			})
		})

		Convey("When requesting distinct values under a state filter", func() {
			opts, err := svc.DistinctValues(context.Background(), w, filter.Spec{State: "Delhi"})

			Convey("Then the remaining options cascade from the filter", func() {
				So(err, ShouldBeNil)
				So(opts.States, ShouldResemble, []string{"Delhi"})
				So(opts.Cities, ShouldResemble, []string{"New Delhi"})
				So(opts.Tenures, ShouldResemble, []int{12})
			})
		})
	})
}
