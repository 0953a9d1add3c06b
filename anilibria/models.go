// Package anilibria implements the authenticated client for the Anilibria catalog API.
package anilibria

// Release is the raw catalog record as returned by the API. Every field except
// the numeric id is optional; normalization of missing fields happens in the
// catalog package, never here.
type Release struct {
	ID          int64      `json:"id"`
	Name        Name       `json:"name"`
	Genres      []Genre    `json:"genres"`
	Season      Descriptor `json:"season"`
	Type        Descriptor `json:"type"`
	AgeRating   Descriptor `json:"age_rating"`
	Year        int        `json:"year"`
	Description string     `json:"description"`
	Poster      Poster     `json:"poster"`
	Episodes    []Episode  `json:"episodes"`
}

// Name holds the release title variants.
type Name struct {
	Main    string `json:"main"`
	English string `json:"english"`
}

// Genre is one entry of the release genre list.
type Genre struct {
	Name string `json:"name"`
}

// Descriptor is the API's generic value/description pair used for season,
// release type and age rating fields.
type Descriptor struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Poster holds the relative poster image paths.
type Poster struct {
	Src       string `json:"src"`
	Optimized struct {
		Src string `json:"src"`
	} `json:"optimized"`
}

// Episode is one playable entry of a release. Stream URLs are present only for
// the qualities the release was encoded in.
type Episode struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	HLS480  string `json:"hls_480"`
	HLS720  string `json:"hls_720"`
	HLS1080 string `json:"hls_1080"`
}
