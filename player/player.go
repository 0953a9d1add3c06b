// Package player turns a chosen stream URL into a playable resolution for the host player.
package player

// Handle is a resolved playback source. Stream reachability is the host
// player's responsibility, not validated here.
type Handle struct {
	URL string
}

// Resolve wraps the given stream URL as the host player's resolved source.
func Resolve(url string) Handle {
	return Handle{URL: url}
}
