// Package nav defines the navigation vocabulary: actions, their query-string
// encoding, and the items handed to the host renderer.
package nav

import (
	"github.com/libria-cli/libria/catalog"
	"github.com/samber/mo"
)

// Item is one selectable entry of a rendered screen. Selecting it re-enters
// the router with the encoded target.
type Item struct {
	Label string
	// Target is the encoded action the item leads to. Empty for purely
	// descriptive items that lead nowhere.
	Target     string
	IsFolder   bool
	IsPlayable bool
	Art        mo.Option[string]
	// Info carries the normalized record backing the item, when there is one.
	Info *catalog.DisplayItem
}

// NewItem returns a folder item leading to the given action.
func NewItem(label string, target Action) Item {
	return Item{
		Label:    label,
		Target:   Encode(target),
		IsFolder: true,
		Art:      mo.None[string](),
	}
}
