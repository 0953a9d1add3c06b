// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/catalog"
)

// Entry is one normalized release of the structured output.
type Entry struct {
	// ID is the catalog id of the release.
	ID int64 `json:"id" jsonschema:"description=Catalog id of the release."`
	// Title is the primary display title.
	Title string `json:"title" jsonschema:"description=Primary display title."`
	// Genres are the release genres in source order.
	Genres []string `json:"genres" jsonschema:"description=Genres in source order."`
	// Season is the release season description or its fallback.
	Season string `json:"season"`
	// Year is the release year or its fallback.
	Year string `json:"year"`
	// Type is the release type description or its fallback.
	Type string `json:"type"`
	// AgeRating is the age rating description or its fallback.
	AgeRating string `json:"age_rating"`
	// Synopsis is the release description or its fallback.
	Synopsis string `json:"synopsis"`
	// Poster is the absolute poster URL, empty when the release has none.
	Poster string `json:"poster,omitempty" jsonschema:"description=Absolute poster URL."`
	// Episodes is the number of listed episodes.
	Episodes int `json:"episodes"`
}

// Output is the complete structured result of one inline invocation.
type Output struct {
	Query  string  `json:"query"`
	Result []Entry `json:"result"`
}

func newEntry(release anilibria.Release, display catalog.DisplayItem) Entry {
	return Entry{
		ID:        release.ID,
		Title:     display.Title,
		Genres:    display.Genres,
		Season:    display.Season,
		Year:      display.Year,
		Type:      display.MediaType,
		AgeRating: display.AgeRating,
		Synopsis:  display.Synopsis,
		Poster:    display.Poster.OrElse(""),
		Episodes:  len(release.Episodes),
	}
}
