package catalog

import (
	"testing"

	"github.com/libria-cli/libria/anilibria"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		n := NewNormalizer("https://anilibria.top/api/v1/")

		Convey("Should skip records without a primary title", func() {
			item := n.Normalize(anilibria.Release{ID: 1})
			So(item.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should never fail on missing optional fields", func() {
			item := n.Normalize(anilibria.Release{
				ID:   1,
				Name: anilibria.Name{Main: "Bare Record"},
			})
			So(item.IsPresent(), ShouldBeTrue)

			d := item.MustGet()
			So(d.Title, ShouldEqual, "Bare Record")
			So(d.Season, ShouldEqual, UnknownSeason)
			So(d.Year, ShouldEqual, UnknownYear)
			So(d.MediaType, ShouldEqual, UnknownType)
			So(d.AgeRating, ShouldEqual, UnknownRating)
			So(d.Synopsis, ShouldEqual, NoDescription)
			So(d.Genres, ShouldBeEmpty)
			So(d.Poster.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should carry real data through unchanged", func() {
			item := n.Normalize(anilibria.Release{
				ID:   2,
				Name: anilibria.Name{Main: "Full Record"},
				Genres: []anilibria.Genre{
					{Name: "Drama"}, {Name: "Fantasy"}, {Name: "Adventure"},
				},
				Season:      anilibria.Descriptor{Description: "Fall"},
				Type:        anilibria.Descriptor{Description: "TV"},
				AgeRating:   anilibria.Descriptor{Description: "16+"},
				Year:        2023,
				Description: "A long journey.",
			})
			d := item.MustGet()
			So(d.Genres, ShouldResemble, []string{"Drama", "Fantasy", "Adventure"})
			So(d.GenreLine(), ShouldEqual, "Drama, Fantasy, Adventure")
			So(d.Season, ShouldEqual, "Fall")
			So(d.Year, ShouldEqual, "2023")
			So(d.MediaType, ShouldEqual, "TV")
			So(d.AgeRating, ShouldEqual, "16+")
			So(d.Synopsis, ShouldEqual, "A long journey.")
		})

		Convey("Should resolve posters against the asset base", func() {
			release := anilibria.Release{Name: anilibria.Name{Main: "Poster Record"}}
			release.Poster.Optimized.Src = "/storage/posters/1.webp"

			d := n.Normalize(release).MustGet()
			So(d.Poster.MustGet(), ShouldEqual, "https://anilibria.top/storage/posters/1.webp")
		})

		Convey("Should fall back to the plain poster path", func() {
			release := anilibria.Release{Name: anilibria.Name{Main: "Poster Record"}}
			release.Poster.Src = "/storage/posters/2.webp"

			d := n.Normalize(release).MustGet()
			So(d.Poster.MustGet(), ShouldEqual, "https://anilibria.top/storage/posters/2.webp")
		})

		Convey("Should join base and path with a single separator", func() {
			slashed := anilibria.Release{Name: anilibria.Name{Main: "Poster Record"}}
			slashed.Poster.Src = "/storage/posters/3.webp"
			bare := anilibria.Release{Name: anilibria.Name{Main: "Poster Record"}}
			bare.Poster.Src = "storage/posters/3.webp"

			want := "https://anilibria.top/storage/posters/3.webp"
			So(n.Normalize(slashed).MustGet().Poster.MustGet(), ShouldEqual, want)
			So(n.Normalize(bare).MustGet().Poster.MustGet(), ShouldEqual, want)
		})
	})
}

func TestAssetBase(t *testing.T) {
	Convey("AssetBase", t, func() {
		Convey("Should strip the versioned path segment", func() {
			So(AssetBase("https://anilibria.top/api/v1/"), ShouldEqual, "https://anilibria.top/")
			So(AssetBase("https://anilibria.top/api/v1"), ShouldEqual, "https://anilibria.top/")
		})

		Convey("Should leave other bases untouched", func() {
			So(AssetBase("https://example.com/"), ShouldEqual, "https://example.com/")
		})
	})
}

func TestQualities(t *testing.T) {
	Convey("Qualities", t, func() {
		Convey("Should keep the fixed preference order", func() {
			qs := Qualities(anilibria.Episode{
				Ordinal: 1,
				HLS480:  "http://cdn/480.m3u8",
				HLS720:  "http://cdn/720.m3u8",
				HLS1080: "http://cdn/1080.m3u8",
			})
			So(qs, ShouldHaveLength, 3)
			So(qs[0].Label, ShouldEqual, "480p")
			So(qs[1].Label, ShouldEqual, "720p")
			So(qs[2].Label, ShouldEqual, "1080p")
		})

		Convey("Should omit missing variants without reordering", func() {
			qs := Qualities(anilibria.Episode{
				Ordinal: 1,
				HLS480:  "http://cdn/480.m3u8",
				HLS1080: "http://cdn/1080.m3u8",
			})
			So(qs, ShouldHaveLength, 2)
			So(qs[0].Label, ShouldEqual, "480p")
			So(qs[1].Label, ShouldEqual, "1080p")
		})

		Convey("Should return nothing for a stream-less episode", func() {
			So(Qualities(anilibria.Episode{Ordinal: 1}), ShouldBeEmpty)
		})
	})
}

func TestEpisodeByOrdinal(t *testing.T) {
	Convey("EpisodeByOrdinal", t, func() {
		episodes := []anilibria.Episode{
			{Ordinal: 1, Name: "First"},
			{Ordinal: 2, Name: "Second"},
		}

		ep, ok := EpisodeByOrdinal(episodes, 2)
		So(ok, ShouldBeTrue)
		So(ep.Name, ShouldEqual, "Second")

		_, ok = EpisodeByOrdinal(episodes, 9)
		So(ok, ShouldBeFalse)
	})
}
