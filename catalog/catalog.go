// Package catalog converts raw catalog records into presentation-ready display items.
//
// Normalization is total: every optional field resolves to a fixed fallback, so
// no downstream component ever re-implements "get field or default". The only
// record a normalizer refuses is one without a primary title.
package catalog

import (
	"strconv"
	"strings"

	"github.com/libria-cli/libria/anilibria"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Fallback values applied when a record omits an optional field.
const (
	UnknownSeason = "Unknown season"
	UnknownYear   = "Unknown year"
	UnknownType   = "Unknown type"
	UnknownRating = "Unknown rating"
	NoDescription = "No description available"
)

// genreSeparator joins the genre list for display.
const genreSeparator = ", "

// DisplayItem is the normalized projection of one catalog record.
type DisplayItem struct {
	Title     string
	Genres    []string
	Season    string
	Year      string
	MediaType string
	AgeRating string
	Synopsis  string
	Poster    mo.Option[string]
}

// GenreLine returns the genre list joined for display, source order preserved.
func (d DisplayItem) GenreLine() string {
	return strings.Join(d.Genres, genreSeparator)
}

// Normalizer shapes raw releases into display items. The asset base is derived
// once from the API base URL and reused for every poster resolution.
type Normalizer struct {
	assets string
}

// NewNormalizer returns a Normalizer resolving posters against the asset host
// derived from the given API base URL.
func NewNormalizer(baseURL string) Normalizer {
	return Normalizer{assets: AssetBase(baseURL)}
}

// Normalize converts one raw record into a DisplayItem. It returns None iff
// the record lacks a primary title; that is the sole admission filter.
func (n Normalizer) Normalize(r anilibria.Release) mo.Option[DisplayItem] {
	if r.Name.Main == "" {
		return mo.None[DisplayItem]()
	}

	item := DisplayItem{
		Title: r.Name.Main,
		Genres: lo.Map(r.Genres, func(g anilibria.Genre, _ int) string {
			return g.Name
		}),
		Season:    fallback(r.Season.Description, UnknownSeason),
		MediaType: fallback(r.Type.Description, UnknownType),
		AgeRating: fallback(r.AgeRating.Description, UnknownRating),
		Synopsis:  fallback(r.Description, NoDescription),
		Year:      UnknownYear,
		Poster:    mo.None[string](),
	}

	if r.Year != 0 {
		item.Year = strconv.Itoa(r.Year)
	}

	if src := posterPath(r.Poster); src != "" {
		item.Poster = mo.Some(n.posterURL(src))
	}

	return mo.Some(item)
}

// AssetBase derives the poster host from the API base URL by stripping the
// trailing versioned path segment ("api/v1/"). This is a pure string
// transform, never a network call.
func AssetBase(baseURL string) string {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return strings.TrimSuffix(baseURL, "api/v1/")
}

// posterURL joins the asset base and a poster path with exactly one separator.
func (n Normalizer) posterURL(src string) string {
	return strings.TrimSuffix(n.assets, "/") + "/" + strings.TrimPrefix(src, "/")
}

func posterPath(p anilibria.Poster) string {
	if p.Optimized.Src != "" {
		return p.Optimized.Src
	}
	return p.Src
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
