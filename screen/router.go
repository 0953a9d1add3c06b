// Package screen builds the menu screens of the catalog browser and routes
// incoming navigation requests to them.
package screen

import (
	"errors"

	"github.com/libria-cli/libria/catalog"
	"github.com/libria-cli/libria/log"
	"github.com/libria-cli/libria/nav"
	"github.com/libria-cli/libria/player"
)

// defaultFavoritesLimit bounds the favorites listing when no limit is configured.
const defaultFavoritesLimit = 50

// Options configures a Router.
type Options struct {
	API  Catalog
	Host Host
	// BaseURL is the API base the poster asset host is derived from.
	BaseURL string
	// FavoritesLimit is the favorites page size; zero selects the default of 50.
	FavoritesLimit int
}

// Router is the single entry point of the browser. Each Dispatch call decodes
// one request and drives exactly one screen builder or the player resolver.
// No state survives across invocations beyond the session inside the catalog
// client.
type Router struct {
	api            Catalog
	host           Host
	normalizer     catalog.Normalizer
	favoritesLimit int
}

// NewRouter assembles a Router from its collaborators.
func NewRouter(opts Options) *Router {
	limit := opts.FavoritesLimit
	if limit <= 0 {
		limit = defaultFavoritesLimit
	}
	return &Router{
		api:            opts.API,
		host:           opts.Host,
		normalizer:     catalog.NewNormalizer(opts.BaseURL),
		favoritesLimit: limit,
	}
}

// Dispatch decodes one raw request and runs the matching screen builder.
// Unknown actions are a logged no-op. A decode failure of a required
// parameter is a link-integrity bug in the emitting screen and is returned
// as an error.
func (r *Router) Dispatch(raw string) error {
	log.Infof("routing params: %s", raw)

	action, err := nav.Decode(raw)
	if err != nil {
		if errors.Is(err, nav.ErrUnknownAction) {
			log.Warnf("ignoring request: %s", err)
			return nil
		}
		return err
	}

	switch a := action.(type) {
	case nav.List:
		r.home()
	case nav.Favorites:
		r.favorites()
	case nav.Search:
		r.search()
	case nav.Details:
		r.details(a.ReleaseID)
	case nav.ChooseQuality:
		r.chooseQuality(a.ReleaseID, a.Ordinal)
	case nav.Play:
		r.play(a.VideoURL)
	}
	return nil
}

// play is the terminal node: a pure hand-off to the host player.
func (r *Router) play(videoURL string) {
	log.Infof("resolving playback for %s", videoURL)
	r.host.ResolvePlayback(player.Resolve(videoURL))
}

// reportFetch surfaces one fetch failure to the user and the log. The
// affected screen still renders, possibly empty; failures never cross the
// screen boundary.
func (r *Router) reportFetch(err error) {
	log.Error(err)
	r.host.Notify("Error", err.Error())
}
