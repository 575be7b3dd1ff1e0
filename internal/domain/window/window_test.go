package window_test

import (
	"errors"
	"testing"
	"time"

	"github.com/blinkr/disburse/internal/domain/window"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given well-formed bounds", t, func() {
		w, err := window.Parse("2025-08-01", "2025-08-15")

		Convey("Then parsing succeeds", func() {
			So(err, ShouldBeNil)
			So(w.StartString(), ShouldEqual, "2025-08-01")
			So(w.EndString(), ShouldEqual, "2025-08-15")
			So(w.IsZero(), ShouldBeFalse)
		})
	})

	Convey("Given a malformed date", t, func() {
		_, err := window.Parse("01/08/2025", "2025-08-15")

		Convey("Then ErrBadDate is returned", func() {
			So(errors.Is(err, window.ErrBadDate), ShouldBeTrue)
		})
	})

	Convey("Given end before start", t, func() {
		_, err := window.Parse("2025-08-15", "2025-08-01")

		Convey("Then ErrBadRange is returned", func() {
			So(errors.Is(err, window.ErrBadRange), ShouldBeTrue)
		})
	})
}

func TestCandidates(t *testing.T) {
	Convey("Given a single-day window", t, func() {
		w, err := window.Parse("2025-08-15", "2025-08-15")
		So(err, ShouldBeNil)

		Convey("Then three candidates are produced in probe order", func() {
			cands := w.Candidates()
			So(cands, ShouldHaveLength, 3)

			So(cands[0].StartString(), ShouldEqual, "2025-08-15")
			So(cands[0].EndString(), ShouldEqual, "2025-08-15")

			So(cands[1].StartString(), ShouldEqual, "2025-08-15")
			So(cands[1].EndString(), ShouldEqual, "2025-08-16")

			So(cands[2].StartString(), ShouldEqual, "2025-08-14")
			So(cands[2].EndString(), ShouldEqual, "2025-08-15")
		})
	})

	Convey("Given a multi-day window", t, func() {
		w, err := window.Parse("2025-08-01", "2025-08-15")
		So(err, ShouldBeNil)

		Convey("Then exactly one candidate extends the end by a day", func() {
			cands := w.Candidates()
			So(cands, ShouldHaveLength, 1)
			So(cands[0].StartString(), ShouldEqual, "2025-08-01")
			So(cands[0].EndString(), ShouldEqual, "2025-08-16")
		})
	})

	Convey("Given a month-boundary single day", t, func() {
		w, err := window.Parse("2025-08-31", "2025-08-31")
		So(err, ShouldBeNil)

		Convey("Then day arithmetic rolls the month correctly", func() {
			cands := w.Candidates()
			So(cands[1].EndString(), ShouldEqual, "2025-09-01")
			So(cands[2].StartString(), ShouldEqual, "2025-08-30")
		})
	})
}

func TestIsZero(t *testing.T) {
	Convey("Given the zero window", t, func() {
		So(window.Window{}.IsZero(), ShouldBeTrue)
	})

	Convey("Given a bounded window", t, func() {
		w := window.Window{Start: time.Now(), End: time.Now()}
		So(w.IsZero(), ShouldBeFalse)
	})
}
