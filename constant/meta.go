// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Libria is the canonical application identifier used for filesystem paths and CLI branding.
	Libria = "libria"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent string presented to the Anilibria API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:78.0) Gecko/20100101 Firefox/78.0"

	// Repository is the GitHub repository used for release update checks.
	Repository = "libria-cli/libria"
)

// Build metadata, overridden via -ldflags at release time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
