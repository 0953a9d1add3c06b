// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// API connection settings.
const (
	APIBaseURL        = "api.url"
	APILogin          = "api.login"
	APIPassword       = "api.password"
	APIFavoritesLimit = "api.favorites_limit"
)

// Playback settings.
const (
	PlayerApp = "player.app"
)

// Logging settings.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behavior settings.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
