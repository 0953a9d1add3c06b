// Package screen builds the menu screens of the catalog browser and routes
// incoming navigation requests to them.
package screen

import (
	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/nav"
	"github.com/libria-cli/libria/player"
	"github.com/samber/mo"
)

// ContentVideos is the content kind of every screen this browser produces.
const ContentVideos = "videos"

// Category labels of the rendered screens.
const (
	CategoryHome      = "Anime List"
	CategoryFavorites = "Favorites"
	CategorySearch    = "Search Results"
	CategoryDetails   = "Anime Details"
	CategoryQuality   = "Choose Quality"
)

// Catalog is the remote API surface the screen builders consume.
// *anilibria.Client implements it.
type Catalog interface {
	Latest() ([]anilibria.Release, error)
	Release(id string) (anilibria.Release, error)
	Search(query string) ([]anilibria.Release, error)
	Favorites(limit int) ([]anilibria.Release, error)
}

// Host is the sink collection the router drives. Implementations render
// screens, resolve playback and run the modal search prompt.
type Host interface {
	// RenderScreen delivers one complete menu. It is called exactly once per
	// container screen, even when the item list is empty.
	RenderScreen(category, content string, items []nav.Item)

	// ResolvePlayback hands a resolved stream to the host player.
	ResolvePlayback(handle player.Handle)

	// PromptText runs a modal text input, blocking until the user confirms or
	// cancels. None means cancelled.
	PromptText(title string) mo.Option[string]

	// Notify surfaces a single short user-visible message.
	Notify(title, message string)
}
