// Package version provides application version tracking and update discovery.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/libria-cli/libria/constant"
)

// Latest retrieves the most recent stable application version identifier from
// the GitHub Releases API.
func Latest() (version string, err error) {
	resp, err := http.Get("https://api.github.com/repos/" + constant.Repository + "/releases/latest")
	if err != nil {
		return
	}
	defer resp.Body.Close()

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = tagVersion(release.TagName)
	return
}

// tagVersion normalizes a release tag into a bare version string, with or
// without the conventional 'v' prefix.
func tagVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}
