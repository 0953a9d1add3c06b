package screen

import (
	"errors"
	"testing"

	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/nav"
	"github.com/libria-cli/libria/player"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeCatalog serves canned releases and counts requests.
type fakeCatalog struct {
	latest    []anilibria.Release
	favorites []anilibria.Release
	results   []anilibria.Release
	releases  map[string]anilibria.Release
	err       error

	calls int
}

func (f *fakeCatalog) Latest() ([]anilibria.Release, error) {
	f.calls++
	return f.latest, f.err
}

func (f *fakeCatalog) Favorites(limit int) ([]anilibria.Release, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.favorites) {
		return f.favorites[:limit], nil
	}
	return f.favorites, nil
}

func (f *fakeCatalog) Search(query string) ([]anilibria.Release, error) {
	f.calls++
	return f.results, f.err
}

func (f *fakeCatalog) Release(id string) (anilibria.Release, error) {
	f.calls++
	if f.err != nil {
		return anilibria.Release{}, f.err
	}
	release, ok := f.releases[id]
	if !ok {
		return anilibria.Release{}, errors.New("no such release")
	}
	return release, nil
}

// fakeHost records every sink invocation.
type fakeHost struct {
	screens []renderedScreen
	played  []player.Handle
	notices []string
	prompt  mo.Option[string]
}

type renderedScreen struct {
	category string
	content  string
	items    []nav.Item
}

func (f *fakeHost) RenderScreen(category, content string, items []nav.Item) {
	f.screens = append(f.screens, renderedScreen{category, content, items})
}

func (f *fakeHost) ResolvePlayback(handle player.Handle) {
	f.played = append(f.played, handle)
}

func (f *fakeHost) PromptText(string) mo.Option[string] {
	return f.prompt
}

func (f *fakeHost) Notify(title, message string) {
	f.notices = append(f.notices, title+": "+message)
}

func titled(id int64, title string) anilibria.Release {
	return anilibria.Release{ID: id, Name: anilibria.Name{Main: title}}
}

func newTestRouter(api Catalog, host Host) *Router {
	return NewRouter(Options{
		API:     api,
		Host:    host,
		BaseURL: "https://anilibria.top/api/v1/",
	})
}

func TestHomeScreen(t *testing.T) {
	Convey("Home screen", t, func() {
		Convey("Should prepend Search and Favorites ahead of the catalog", func() {
			api := &fakeCatalog{latest: []anilibria.Release{titled(1, "Alpha"), titled(2, "Beta")}}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch(""), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			s := host.screens[0]
			So(s.category, ShouldEqual, CategoryHome)
			So(s.content, ShouldEqual, ContentVideos)
			So(s.items, ShouldHaveLength, 4)
			So(s.items[0].Label, ShouldEqual, "Search")
			So(s.items[1].Label, ShouldEqual, "Favorites")
			So(s.items[2].Label, ShouldEqual, "Alpha")
			So(s.items[3].Label, ShouldEqual, "Beta")
		})

		Convey("Should still render the two static items when the fetch fails", func() {
			api := &fakeCatalog{err: errors.New("connection refused")}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=list"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].items, ShouldHaveLength, 2)
			So(host.screens[0].items[0].Label, ShouldEqual, "Search")
			So(host.screens[0].items[1].Label, ShouldEqual, "Favorites")
			So(host.notices, ShouldHaveLength, 1)
		})

		Convey("Should drop records without a title", func() {
			api := &fakeCatalog{latest: []anilibria.Release{
				titled(1, "Named"),
				{ID: 2},
			}}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch(""), ShouldBeNil)
			So(host.screens[0].items, ShouldHaveLength, 3)
		})

		Convey("Should be idempotent for identical requests", func() {
			api := &fakeCatalog{latest: []anilibria.Release{titled(1, "Alpha")}}
			host := &fakeHost{}
			router := newTestRouter(api, host)

			So(router.Dispatch("action=list"), ShouldBeNil)
			So(router.Dispatch("action=list"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 2)
			So(host.screens[0], ShouldResemble, host.screens[1])
		})
	})
}

func TestFavoritesScreen(t *testing.T) {
	Convey("Favorites screen", t, func() {
		Convey("Should list favorites without static entries", func() {
			api := &fakeCatalog{favorites: []anilibria.Release{titled(5, "Saved")}}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=favorites"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].category, ShouldEqual, CategoryFavorites)
			So(host.screens[0].items, ShouldHaveLength, 1)
			So(host.screens[0].items[0].Label, ShouldEqual, "Saved")
		})

		Convey("Should render an empty screen when the fetch fails", func() {
			api := &fakeCatalog{err: errors.New("timeout")}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=favorites"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].items, ShouldBeEmpty)
		})
	})
}

func TestSearchScreen(t *testing.T) {
	Convey("Search screen", t, func() {
		Convey("Should issue no fetch and render nothing when cancelled", func() {
			api := &fakeCatalog{}
			host := &fakeHost{prompt: mo.None[string]()}

			So(newTestRouter(api, host).Dispatch("action=search"), ShouldBeNil)

			So(api.calls, ShouldEqual, 0)
			So(host.screens, ShouldBeEmpty)
		})

		Convey("Should treat an empty confirmed query as a cancellation", func() {
			api := &fakeCatalog{}
			host := &fakeHost{prompt: mo.Some("")}

			So(newTestRouter(api, host).Dispatch("action=search"), ShouldBeNil)

			So(api.calls, ShouldEqual, 0)
			So(host.screens, ShouldBeEmpty)
		})

		Convey("Should render the results of a confirmed query", func() {
			api := &fakeCatalog{results: []anilibria.Release{titled(7, "Found")}}
			host := &fakeHost{prompt: mo.Some("found")}

			So(newTestRouter(api, host).Dispatch("action=search"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].category, ShouldEqual, CategorySearch)
			So(host.screens[0].items, ShouldHaveLength, 1)
			So(host.screens[0].items[0].Label, ShouldEqual, "Found")
		})
	})
}

func TestDetailsScreen(t *testing.T) {
	Convey("Details screen", t, func() {
		release := titled(42, "Long Journey")
		release.Description = "A long journey."
		release.Episodes = []anilibria.Episode{
			{Ordinal: 1, Name: "Departure"},
			{Ordinal: 2, Name: "Crossing"},
			{Ordinal: 3, Name: "Arrival"},
		}

		Convey("Should render one self item plus one item per episode", func() {
			api := &fakeCatalog{releases: map[string]anilibria.Release{"42": release}}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=details&anime_id=42"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			items := host.screens[0].items
			So(items, ShouldHaveLength, 4)

			So(items[0].Label, ShouldEqual, "Long Journey")
			So(items[0].IsFolder, ShouldBeFalse)
			So(items[0].Target, ShouldBeEmpty)

			for i, episode := range release.Episodes {
				item := items[i+1]
				So(item.IsFolder, ShouldBeTrue)

				action, err := nav.Decode(item.Target)
				So(err, ShouldBeNil)
				So(action, ShouldResemble, nav.ChooseQuality{
					ReleaseID: "42",
					Ordinal:   episode.Ordinal,
				})
			}
		})

		Convey("Should render an empty screen when the record has no title", func() {
			api := &fakeCatalog{releases: map[string]anilibria.Release{"9": {ID: 9}}}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=details&anime_id=9"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].items, ShouldBeEmpty)
		})

		Convey("Should render an empty screen when the fetch fails", func() {
			api := &fakeCatalog{err: errors.New("boom")}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=details&anime_id=42"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].items, ShouldBeEmpty)
			So(host.notices, ShouldHaveLength, 1)
		})
	})
}

func TestQualityScreen(t *testing.T) {
	Convey("Quality picker", t, func() {
		release := titled(42, "Long Journey")
		release.Description = "A long journey."
		release.Episodes = []anilibria.Episode{
			{Ordinal: 3, Name: "Arrival", HLS480: "http://cdn/480", HLS1080: "http://cdn/1080"},
		}
		api := &fakeCatalog{releases: map[string]anilibria.Release{"42": release}}

		Convey("Should emit playable items in preference order, skipping absent qualities", func() {
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=choose_quality&anime_id=42&episode_ordinal=3"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			items := host.screens[0].items
			So(items, ShouldHaveLength, 2)
			So(items[0].Label, ShouldEqual, "3 episode - 480p")
			So(items[1].Label, ShouldEqual, "3 episode - 1080p")

			for _, item := range items {
				So(item.IsPlayable, ShouldBeTrue)
				So(item.IsFolder, ShouldBeFalse)
			}

			action, err := nav.Decode(items[1].Target)
			So(err, ShouldBeNil)
			So(action, ShouldResemble, nav.Play{VideoURL: "http://cdn/1080"})
		})

		Convey("Should reuse the release synopsis on every quality item", func() {
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=choose_quality&anime_id=42&episode_ordinal=3"), ShouldBeNil)

			for _, item := range host.screens[0].items {
				So(item.Info, ShouldNotBeNil)
				So(item.Info.Synopsis, ShouldEqual, "A long journey.")
			}
		})

		Convey("Should render an empty screen for an unknown ordinal", func() {
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=choose_quality&anime_id=42&episode_ordinal=99"), ShouldBeNil)

			So(host.screens, ShouldHaveLength, 1)
			So(host.screens[0].items, ShouldBeEmpty)
		})
	})
}

func TestRouterDispatch(t *testing.T) {
	Convey("Router dispatch", t, func() {
		Convey("Should hand playback to the host unchanged", func() {
			host := &fakeHost{}

			So(newTestRouter(&fakeCatalog{}, host).Dispatch("action=play&video_url=http%3A%2F%2Fcdn%2F1080"), ShouldBeNil)

			So(host.played, ShouldHaveLength, 1)
			So(host.played[0].URL, ShouldEqual, "http://cdn/1080")
			So(host.screens, ShouldBeEmpty)
		})

		Convey("Should treat an unknown action as a silent no-op", func() {
			api := &fakeCatalog{}
			host := &fakeHost{}

			So(newTestRouter(api, host).Dispatch("action=frobnicate"), ShouldBeNil)

			So(api.calls, ShouldEqual, 0)
			So(host.screens, ShouldBeEmpty)
			So(host.played, ShouldBeEmpty)
			So(host.notices, ShouldBeEmpty)
		})

		Convey("Should surface missing required parameters as errors", func() {
			host := &fakeHost{}

			err := newTestRouter(&fakeCatalog{}, host).Dispatch("action=details")
			So(err, ShouldNotBeNil)
			So(host.screens, ShouldBeEmpty)
		})
	})
}
