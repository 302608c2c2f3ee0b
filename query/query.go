// Package query builds search query strings from structured filter
// settings: a simple key:value dialect for client-side filtering, and the
// backend full-text dialect with ontology-aware section expansion.
//
// Both builders are pure functions of their inputs. Unknown filter keys
// pass through verbatim; the backend grammar is expected to ignore or
// reject unknown fields itself.
package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/match"
)

// A Setting is one filter criterion. Flag settings render as is:<key>
// predicates; all other settings render as <key>:<value>.
type Setting struct {
	Key   string
	Value string
	Flag  bool
}

// Settings is an ordered list of filter criteria. Order is preserved in
// the built query strings.
type Settings []Setting

// active reports whether the setting contributes to a query.
func (s Setting) active() bool {
	return s.Flag || s.Value != ""
}

// Get returns the value of the first active setting for key, or "".
func (ss Settings) Get(key string) string {
	for _, s := range ss {
		if s.Key == key && s.active() {
			return s.Value
		}
	}
	return ""
}

// Panel view identifiers. Views other than ViewDefault scope section
// filters to a controlled vocabulary, e.g. "ontology:edam_operations".
const (
	ViewDefault        = "default"
	viewOntologyPrefix = "ontology:"
)

// BuildSimple renders settings in the key:value dialect, joined by single
// spaces. A flag renders as is:<key>, anything else as <key>:<value>, and
// inactive settings are skipped. As a special case a lone "name" setting
// renders as the bare value, so a plain name works as a free-text query.
func BuildSimple(settings Settings) string {
	if len(settings) == 1 && settings[0].Key == "name" && !settings[0].Flag {
		return settings[0].Value
	}

	parts := make([]string, 0, len(settings))
	for _, s := range settings {
		switch {
		case s.Flag:
			parts = append(parts, "is:"+s.Key)
		case s.Value != "":
			parts = append(parts, s.Key+":"+s.Value)
		}
	}
	return strings.Join(parts, " ")
}

// BuildFullText renders settings in the backend full-text dialect:
//
//	(name:(N) name_exact:(N) description:(N)) AND (<clauses>)
//
// The name group is empty when no name filter is present, and every clause
// carries a trailing "AND ". Both quirks are kept as-is for wire
// compatibility with the deployed backend grammar, which tolerates them.
//
// In a non-default view, a section filter is resolved against the toolbox
// to an ontology term and emitted under the view's ontology field; when no
// term matches, the literal section clause is emitted instead. An "id"
// filter targets the exact-match id field.
func BuildFullText(settings Settings, view string, box catalog.Toolbox) string {
	var sb strings.Builder

	sb.WriteString("(")
	if name := settings.Get("name"); name != "" {
		fmt.Fprintf(&sb, "name:(%s) name_exact:(%s) description:(%s)", name, name, name)
	}
	sb.WriteString(") AND (")

	for _, s := range settings {
		if !s.active() || s.Key == "name" {
			continue
		}
		value := s.Value
		if s.Flag {
			value = "true"
		}
		switch {
		case s.Key == "section" && view != ViewDefault:
			if field, id := ResolveOntology(view, value, box); field != "" && id != "" {
				fmt.Fprintf(&sb, "%s:(%s) AND ", field, id)
			} else {
				fmt.Fprintf(&sb, "%s:(%s) AND ", s.Key, value)
			}
		case s.Key == "id":
			fmt.Fprintf(&sb, "id_exact:(%s) AND ", value)
		default:
			fmt.Fprintf(&sb, "%s:(%s) AND ", s.Key, value)
		}
	}

	sb.WriteString(")")
	return sb.String()
}

// ResolveOntology maps a section name filter to an ontology term in the
// given view. The field is the view's suffix after "ontology:", and the id
// is taken from the first top-level section whose name matches the filter
// value case-insensitively. The value is treated as a regular expression
// when it compiles, and as a literal substring otherwise. Either return
// value is "" when there is nothing to resolve.
func ResolveOntology(view, section string, box catalog.Toolbox) (field, id string) {
	suffix, ok := strings.CutPrefix(view, viewOntologyPrefix)
	if !ok || suffix == "" {
		return "", ""
	}

	var matches func(name string) bool
	if re, err := regexp.Compile("(?i)" + section); err == nil {
		matches = re.MatchString
	} else {
		folded := match.Fold(section)
		matches = func(name string) bool {
			return strings.Contains(match.Fold(name), folded)
		}
	}

	for _, n := range box {
		s, isSection := n.(catalog.Section)
		if !isSection {
			continue
		}
		if matches(s.Name) {
			return suffix, s.ID
		}
	}
	return suffix, ""
}
