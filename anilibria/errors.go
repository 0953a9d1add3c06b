// Package anilibria implements the authenticated client for the Anilibria catalog API.
package anilibria

import "fmt"

// AuthError reports a failed authentication attempt. It is fatal: the
// application has no unauthenticated mode and must not render any screen
// without a session.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FetchErrorKind classifies a failed catalog request.
type FetchErrorKind int

const (
	// FetchNetwork covers transport failures: unreachable host, timeout, non-2xx status.
	FetchNetwork FetchErrorKind = iota
	// FetchDecode covers malformed or non-JSON response bodies.
	FetchDecode
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchNetwork:
		return "network"
	case FetchDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError reports a failed catalog request. It is fatal to the current
// screen render but never to the process.
type FetchError struct {
	Kind     FetchErrorKind
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s error: %s", e.Endpoint, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
