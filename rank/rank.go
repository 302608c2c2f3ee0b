// Package rank implements weighted multi-key search over a flat tool list.
//
// A Ranker tries each match key in caller order against every tool. The
// first key that matches decides the tool's weight: a literal substring
// match always counts, and sufficiently long queries fall back to fuzzy
// matching on all keys except the combined text. Results come back as tool
// IDs sorted by weight descending; equal weights keep the tools' original
// relative order.
package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/match"
)

// Derived key names understood alongside plain attribute names.
const (
	// KeyCombined searches the tool name and description joined by a space.
	KeyCombined = "combined"
	// KeyHyphenated searches the tool name with hyphens as spaces, so
	// "cutadapt-trim" is findable as "cutadapt trim".
	KeyHyphenated = "hyphenated"
)

// A Key pairs a searchable tool attribute with its priority weight.
type Key struct {
	Name   string
	Weight int
}

// Keys is the caller-ordered list of match keys, highest priority first.
type Keys struct {
	Keys []Key

	// Exact, when non-zero, is the weight used instead of the key's own
	// weight when the query equals the candidate value exactly.
	Exact int
}

// DefaultMinFuzzyLength is the minimum query rune length before the fuzzy
// fallback is attempted. Shorter queries produce too many spurious
// single-edit matches to be useful.
const DefaultMinFuzzyLength = 5

// Config carries the tunable thresholds for ranked search.
type Config struct {
	// MinFuzzyLength is the minimum query rune length for fuzzy matching.
	// Zero means DefaultMinFuzzyLength.
	MinFuzzyLength int

	// FuzzyThreshold is the edit distance allowed by the fuzzy matcher.
	// Zero means match.DefaultThreshold.
	FuzzyThreshold int
}

// Ranker scores tools against a query. The zero Config gives the standard
// thresholds. A Ranker is stateless across calls and safe for concurrent
// use.
type Ranker struct {
	minFuzzyLength int
	fuzzy          match.Matcher
}

// NewRanker returns a Ranker with the given thresholds.
func NewRanker(cfg Config) *Ranker {
	if cfg.MinFuzzyLength == 0 {
		cfg.MinFuzzyLength = DefaultMinFuzzyLength
	}
	return &Ranker{
		minFuzzyLength: cfg.MinFuzzyLength,
		fuzzy:          match.Matcher{Threshold: cfg.FuzzyThreshold},
	}
}

// result pairs a tool ID with its match weight for ordering.
type result struct {
	id     string
	weight int
}

// Search returns the IDs of tools matching query, most relevant first.
// The query is trimmed and case-folded before matching. Each tool matches
// at most once, on the first key that accepts it. An empty query matches
// nothing.
func (r *Ranker) Search(tools []catalog.Tool, keys Keys, query string) []string {
	query = match.Fold(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	queryLen := utf8.RuneCountInString(query)

	var results []result
	for _, tool := range tools {
		for _, key := range keys.Keys {
			value := candidateValue(tool, key.Name)
			weight := key.Weight
			if keys.Exact != 0 && value == query {
				weight = keys.Exact
			}
			if strings.Contains(value, query) {
				results = append(results, result{id: tool.ID, weight: weight})
				break
			}
			if key.Name != KeyCombined && queryLen >= r.minFuzzyLength && r.fuzzy.Matches(query, value) {
				results = append(results, result{id: tool.ID, weight: weight})
				break
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].weight > results[j].weight
	})

	ids := make([]string, len(results))
	for i, res := range results {
		ids[i] = res.id
	}
	return ids
}

// candidateValue derives the folded searchable value of tool for key.
// Missing attributes fold to "", which never matches a non-empty query.
func candidateValue(tool catalog.Tool, key string) string {
	switch key {
	case KeyCombined:
		return match.Fold(tool.Name + " " + tool.Description)
	case KeyHyphenated:
		return match.Fold(strings.ReplaceAll(tool.Name, "-", " "))
	default:
		return match.Fold(tool.Attribute(key))
	}
}
