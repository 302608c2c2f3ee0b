package panel

import (
	"errors"

	"github.com/panelforge/toolpanel/backend"
	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/rank"
)

// ErrToolboxRequired is returned by New when no catalog is supplied.
var ErrToolboxRequired = errors.New("panel: Toolbox is required")

// Options configures a Panel.
type Options struct {
	// Toolbox is the catalog snapshot to search.
	// Required.
	Toolbox catalog.Toolbox

	// Keys are the weighted match keys for in-process ranked search.
	// Default: DefaultKeys().
	Keys rank.Keys

	// Rank tunes the ranked search thresholds.
	// Default: the rank package defaults.
	Rank rank.Config

	// Searcher, when set, answers queries instead of the in-process
	// ranked search. Optional.
	Searcher backend.Searcher
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	if o.Toolbox == nil {
		return ErrToolboxRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if len(o.Keys.Keys) == 0 {
		o.Keys = DefaultKeys()
	}
}

// DefaultKeys returns the standard match keys: tool name first, then the
// de-hyphenated name, the description, and finally the combined text, with
// a bonus weight for exact name matches.
func DefaultKeys() rank.Keys {
	return rank.Keys{
		Keys: []rank.Key{
			{Name: "name", Weight: 4},
			{Name: rank.KeyHyphenated, Weight: 3},
			{Name: "description", Weight: 2},
			{Name: rank.KeyCombined, Weight: 1},
		},
		Exact: 5,
	}
}
