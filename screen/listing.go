// Package screen builds the menu screens of the catalog browser and routes
// incoming navigation requests to them.
package screen

import (
	"strconv"

	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/nav"
)

// home renders the root screen: the static Search and Favorites entries
// followed by the latest releases in API order.
func (r *Router) home() {
	items := []nav.Item{
		nav.NewItem("Search", nav.Search{}),
		nav.NewItem("Favorites", nav.Favorites{}),
	}

	releases, err := r.api.Latest()
	if err != nil {
		r.reportFetch(err)
	} else {
		items = append(items, r.releaseItems(releases)...)
	}

	r.host.RenderScreen(CategoryHome, ContentVideos, items)
}

// favorites renders the authenticated user's favorites listing.
func (r *Router) favorites() {
	var items []nav.Item

	releases, err := r.api.Favorites(r.favoritesLimit)
	if err != nil {
		r.reportFetch(err)
	} else {
		items = r.releaseItems(releases)
	}

	r.host.RenderScreen(CategoryFavorites, ContentVideos, items)
}

// search runs the modal text prompt and renders the matching releases.
// Cancellation or an empty query aborts the flow with no fetch and no screen.
func (r *Router) search() {
	query, ok := r.host.PromptText("Search anime").Get()
	if !ok || query == "" {
		return
	}

	var items []nav.Item
	releases, err := r.api.Search(query)
	if err != nil {
		r.reportFetch(err)
	} else {
		items = r.releaseItems(releases)
	}

	r.host.RenderScreen(CategorySearch, ContentVideos, items)
}

// releaseItems normalizes raw releases into navigation items targeting their
// details screens. Records without a title contribute nothing.
func (r *Router) releaseItems(releases []anilibria.Release) []nav.Item {
	items := make([]nav.Item, 0, len(releases))
	for _, release := range releases {
		display, ok := r.normalizer.Normalize(release).Get()
		if !ok {
			continue
		}

		item := nav.NewItem(display.Title, nav.Details{
			ReleaseID: strconv.FormatInt(release.ID, 10),
		})
		item.Art = display.Poster
		item.Info = &display
		items = append(items, item)
	}
	return items
}
