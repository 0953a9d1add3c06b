// Package catalog converts raw catalog records into presentation-ready display items.
package catalog

import "github.com/libria-cli/libria/anilibria"

// Quality is one playable stream variant of an episode.
type Quality struct {
	Label string
	URL   string
}

// Qualities lists the playable stream variants of an episode in the fixed
// preference order 480p, 720p, 1080p. Variants without a stream URL are
// omitted entirely.
func Qualities(ep anilibria.Episode) []Quality {
	candidates := []Quality{
		{Label: "480p", URL: ep.HLS480},
		{Label: "720p", URL: ep.HLS720},
		{Label: "1080p", URL: ep.HLS1080},
	}

	var available []Quality
	for _, q := range candidates {
		if q.URL != "" {
			available = append(available, q)
		}
	}
	return available
}

// EpisodeByOrdinal locates the episode with the given ordinal.
func EpisodeByOrdinal(episodes []anilibria.Episode, ordinal int) (anilibria.Episode, bool) {
	for _, ep := range episodes {
		if ep.Ordinal == ordinal {
			return ep, true
		}
	}
	return anilibria.Episode{}, false
}
