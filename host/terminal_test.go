package host

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNext(t *testing.T) {
	Convey("Next", t, func() {
		term := NewTerminal()

		Convey("Should start with no target", func() {
			So(term.Next().IsAbsent(), ShouldBeTrue)
		})

		Convey("Should hand out a chosen target exactly once", func() {
			term.next = mo.Some("action=search")
			So(term.Next().MustGet(), ShouldEqual, "action=search")

			// A cancelled prompt dispatches without rendering a screen; the
			// following read must not replay the previous target.
			So(term.Next().IsAbsent(), ShouldBeTrue)
		})
	})
}
