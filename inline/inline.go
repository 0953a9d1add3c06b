// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/catalog"
)

// Catalog is the remote API surface inline mode consumes.
type Catalog interface {
	Latest() ([]anilibria.Release, error)
	Search(query string) ([]anilibria.Release, error)
}

// Options configures one inline invocation.
type Options struct {
	Out io.Writer
	API Catalog
	// BaseURL is the API base the poster asset host is derived from.
	BaseURL string
	// Query is the search text; empty lists the latest releases instead.
	Query string
	Json  bool
}

// Run executes one non-interactive listing and writes it to the configured output.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var (
		releases []anilibria.Release
		err      error
	)
	if options.Query == "" {
		releases, err = options.API.Latest()
	} else {
		releases, err = options.API.Search(options.Query)
	}
	if err != nil {
		return err
	}

	normalizer := catalog.NewNormalizer(options.BaseURL)
	entries := make([]Entry, 0, len(releases))
	for _, release := range releases {
		display, ok := normalizer.Normalize(release).Get()
		if !ok {
			continue
		}
		entries = append(entries, newEntry(release, display))
	}

	if options.Json {
		encoder := json.NewEncoder(options.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(&Output{Query: options.Query, Result: entries})
	}

	for _, entry := range entries {
		fmt.Fprintf(options.Out, "%d\t%s (%s)\n", entry.ID, entry.Title, entry.Year)
	}
	return nil
}
