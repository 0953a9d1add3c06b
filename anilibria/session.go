// Package anilibria implements the authenticated client for the Anilibria catalog API.
package anilibria

// Session is the authenticated context shared read-only across a process run.
// It is created exactly once at startup and never mutated afterwards.
type Session struct {
	// BaseURL is the versioned API root, e.g. "https://anilibria.top/api/v1/".
	BaseURL string
	// Token is the bearer token obtained from the login endpoint.
	Token string
}
