// Package anilibria implements the authenticated client for the Anilibria catalog API.
package anilibria

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/libria-cli/libria/constant"
	"github.com/libria-cli/libria/log"
	"github.com/libria-cli/libria/network"
)

// API endpoints, relative to the session base URL.
const (
	endpointLogin     = "accounts/users/auth/login"
	endpointLatest    = "anime/releases/latest"
	endpointRelease   = "anime/releases"
	endpointSearch    = "app/search/releases"
	endpointFavorites = "accounts/users/me/favorites/releases"
)

// logBodyLimit caps the response prefix written to the request log.
const logBodyLimit = 200

// Client issues authenticated JSON requests against the catalog API.
type Client struct {
	session Session
	http    *http.Client
}

// Authenticate posts the credentials to the login endpoint and returns a
// Session carrying the bearer token. A response without a token is an
// *AuthError, as is any transport or decoding failure.
func Authenticate(baseURL, login, password string) (Session, error) {
	endpoint, err := url.JoinPath(baseURL, endpointLogin)
	if err != nil {
		return Session{}, &AuthError{Err: err}
	}

	body, err := json.Marshal(map[string]string{
		"login":    login,
		"password": password,
	})
	if err != nil {
		return Session{}, &AuthError{Err: err}
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Session{}, &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Errorf("authentication request failed: %s", err)
		return Session{}, &AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("authentication returned status %d", resp.StatusCode)
		return Session{}, &AuthError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Session{}, &AuthError{Err: err}
	}
	if payload.Token == "" {
		return Session{}, &AuthError{Err: errors.New("authorization token is missing")}
	}

	log.Info("authenticated against " + baseURL)
	return Session{BaseURL: baseURL, Token: payload.Token}, nil
}

// New returns a Client bound to the given session.
func New(session Session) *Client {
	return &Client{session: session, http: network.Client}
}

// Session returns the session the client was created with.
func (c *Client) Session() Session {
	return c.session
}

// Latest fetches the most recent catalog releases.
func (c *Client) Latest() ([]Release, error) {
	var releases []Release
	if err := c.get(endpointLatest, nil, &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// Release fetches a single catalog record by id.
func (c *Client) Release(id string) (Release, error) {
	var release Release
	if err := c.get(endpointRelease+"/"+id, nil, &release); err != nil {
		return Release{}, err
	}
	return release, nil
}

// Search fetches catalog records matching a free-text query.
func (c *Client) Search(query string) ([]Release, error) {
	var releases []Release
	params := url.Values{"query": []string{query}}
	if err := c.get(endpointSearch, params, &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// Favorites fetches the authenticated user's favorites, bounded by limit.
func (c *Client) Favorites(limit int) ([]Release, error) {
	var page struct {
		Data []Release `json:"data"`
	}
	params := url.Values{"limit": []string{strconv.Itoa(limit)}}
	if err := c.get(endpointFavorites, params, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// get issues one authenticated GET request and decodes the JSON body into out.
func (c *Client) get(endpoint string, params url.Values, out any) error {
	if c.session.Token == "" {
		return errors.New("empty session token")
	}

	full, err := url.JoinPath(c.session.BaseURL, endpoint)
	if err != nil {
		return &FetchError{Kind: FetchNetwork, Endpoint: endpoint, Err: err}
	}
	if len(params) > 0 {
		full += "?" + params.Encode()
	}

	log.Infof("fetching %s", full)
	req, err := http.NewRequest(http.MethodGet, full, nil)
	if err != nil {
		return &FetchError{Kind: FetchNetwork, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token)
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("error fetching %s: %s", endpoint, err)
		return &FetchError{Kind: FetchNetwork, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Kind: FetchNetwork, Endpoint: endpoint, Err: err}
	}
	log.Infof("response from %s: %s", endpoint, truncate(body, logBodyLimit))

	if resp.StatusCode != http.StatusOK {
		return &FetchError{
			Kind:     FetchNetwork,
			Endpoint: endpoint,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{Kind: FetchDecode, Endpoint: endpoint, Err: err}
	}
	return nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
