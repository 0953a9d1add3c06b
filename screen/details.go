// Package screen builds the menu screens of the catalog browser and routes
// incoming navigation requests to them.
package screen

import (
	"fmt"

	"github.com/libria-cli/libria/catalog"
	"github.com/libria-cli/libria/nav"
)

// details renders one release: a self-describing non-folder item followed by
// one folder item per episode leading to the quality picker.
func (r *Router) details(releaseID string) {
	var items []nav.Item

	release, err := r.api.Release(releaseID)
	if err != nil {
		r.reportFetch(err)
		r.host.RenderScreen(CategoryDetails, ContentVideos, items)
		return
	}

	if display, ok := r.normalizer.Normalize(release).Get(); ok {
		self := nav.Item{
			Label: display.Title,
			Art:   display.Poster,
			Info:  &display,
		}
		items = append(items, self)

		for _, episode := range release.Episodes {
			item := nav.NewItem(
				fmt.Sprintf("%d episode - %s", episode.Ordinal, episode.Name),
				nav.ChooseQuality{ReleaseID: releaseID, Ordinal: episode.Ordinal},
			)
			item.Info = &display
			items = append(items, item)
		}
	}

	r.host.RenderScreen(CategoryDetails, ContentVideos, items)
}

// chooseQuality renders one playable item per stream variant of the requested
// episode. Each item reuses the release synopsis as its description.
func (r *Router) chooseQuality(releaseID string, ordinal int) {
	var items []nav.Item

	release, err := r.api.Release(releaseID)
	if err != nil {
		r.reportFetch(err)
		r.host.RenderScreen(CategoryQuality, ContentVideos, items)
		return
	}

	display, hasDisplay := r.normalizer.Normalize(release).Get()
	if episode, ok := catalog.EpisodeByOrdinal(release.Episodes, ordinal); ok {
		for _, quality := range catalog.Qualities(episode) {
			item := nav.Item{
				Label:      fmt.Sprintf("%d episode - %s", episode.Ordinal, quality.Label),
				Target:     nav.Encode(nav.Play{VideoURL: quality.URL}),
				IsPlayable: true,
			}
			if hasDisplay {
				item.Art = display.Poster
				item.Info = &display
			}
			items = append(items, item)
		}
	}

	r.host.RenderScreen(CategoryQuality, ContentVideos, items)
}
