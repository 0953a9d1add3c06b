// Package nav defines the navigation vocabulary: actions, their query-string
// encoding, and the items handed to the host renderer.
//
// Actions are a sealed tagged union decoded exactly once, at the router
// boundary. No other component parses raw parameter strings. The encoded form
// is the sole mechanism of screen-to-screen state transfer.
package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Query parameter names of the action encoding.
const (
	paramAction  = "action"
	paramRelease = "anime_id"
	paramOrdinal = "episode_ordinal"
	paramVideo   = "video_url"
)

// Action values of the encoding.
const (
	actionList      = "list"
	actionDetails   = "details"
	actionQuality   = "choose_quality"
	actionPlay      = "play"
	actionSearch    = "search"
	actionFavorites = "favorites"
)

// ErrUnknownAction marks a request whose action value matches no screen.
// The router treats it as a silent no-op, never as a crash.
var ErrUnknownAction = errors.New("unknown action")

// Action is the discrete operation a navigation request asks the router to
// perform. The variant set is sealed; every variant carries exactly the
// parameters its screen requires.
type Action interface {
	isAction()
}

// List requests the home screen. It is also the default for requests without
// an action key.
type List struct{}

// Favorites requests the authenticated user's favorites screen.
type Favorites struct{}

// Search requests the free-text search flow.
type Search struct{}

// Details requests the episode listing of one release.
type Details struct {
	ReleaseID string
}

// ChooseQuality requests the stream-quality picker for one episode.
type ChooseQuality struct {
	ReleaseID string
	Ordinal   int
}

// Play requests playback of a resolved stream URL.
type Play struct {
	VideoURL string
}

func (List) isAction()          {}
func (Favorites) isAction()     {}
func (Search) isAction()        {}
func (Details) isAction()       {}
func (ChooseQuality) isAction() {}
func (Play) isAction()          {}

// Encode serializes an action into its query-string form. Every item the
// system emits carries a target produced here, which guarantees the decoded
// counterpart recovers the exact action and parameters.
func Encode(a Action) string {
	values := url.Values{}
	switch v := a.(type) {
	case List:
		values.Set(paramAction, actionList)
	case Favorites:
		values.Set(paramAction, actionFavorites)
	case Search:
		values.Set(paramAction, actionSearch)
	case Details:
		values.Set(paramAction, actionDetails)
		values.Set(paramRelease, v.ReleaseID)
	case ChooseQuality:
		values.Set(paramAction, actionQuality)
		values.Set(paramRelease, v.ReleaseID)
		values.Set(paramOrdinal, strconv.Itoa(v.Ordinal))
	case Play:
		values.Set(paramAction, actionPlay)
		values.Set(paramVideo, v.VideoURL)
	}
	return values.Encode()
}

// Decode parses a raw query string into an Action. An absent action key maps
// to List. An unrecognized action value yields ErrUnknownAction; a missing
// required parameter is a link-integrity failure and yields a plain error.
func Decode(raw string) (Action, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse request params: %w", err)
	}

	switch name := values.Get(paramAction); name {
	case "", actionList:
		return List{}, nil
	case actionFavorites:
		return Favorites{}, nil
	case actionSearch:
		return Search{}, nil
	case actionDetails:
		id := values.Get(paramRelease)
		if id == "" {
			return nil, fmt.Errorf("details request without %s", paramRelease)
		}
		return Details{ReleaseID: id}, nil
	case actionQuality:
		id := values.Get(paramRelease)
		if id == "" {
			return nil, fmt.Errorf("quality request without %s", paramRelease)
		}
		ordinal, err := strconv.Atoi(values.Get(paramOrdinal))
		if err != nil {
			return nil, fmt.Errorf("quality request with bad %s: %w", paramOrdinal, err)
		}
		return ChooseQuality{ReleaseID: id, Ordinal: ordinal}, nil
	case actionPlay:
		video := values.Get(paramVideo)
		if video == "" {
			return nil, fmt.Errorf("play request without %s", paramVideo)
		}
		return Play{VideoURL: video}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}
