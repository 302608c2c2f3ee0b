// Package project maps ordered search results back onto the catalog tree,
// producing either a flat tool list or pruned sections for display.
//
// Ranks are transient per-search data carried alongside tools; catalog
// nodes are never written to, so a toolbox can be shared read-only across
// concurrent searches.
package project

import (
	"sort"

	"github.com/panelforge/toolpanel/catalog"
)

// Flatten returns the tools of box in encounter order: section-less tools
// where they stand, and each section's tools in place. Labels and nested
// section containers are skipped.
func Flatten(box catalog.Toolbox) []catalog.Tool {
	var tools []catalog.Tool
	for _, n := range box {
		switch v := n.(type) {
		case catalog.Tool:
			tools = append(tools, v)
		case catalog.Section:
			for _, child := range v.Elems {
				if t, ok := child.(catalog.Tool); ok {
					tools = append(tools, t)
				}
			}
		}
	}
	return tools
}

// Ranked pairs a tool with its transient per-search rank. Lower ranks are
// more relevant.
type Ranked struct {
	Tool catalog.Tool
	Rank int
}

// rankIndex maps each matched ID to its first position in matched.
func rankIndex(matched []string) map[string]int {
	ranks := make(map[string]int, len(matched))
	for i, id := range matched {
		if _, ok := ranks[id]; !ok {
			ranks[id] = i
		}
	}
	return ranks
}

// rankAndSort keeps the tools present in ranks, pairs each with its rank,
// and stable-sorts ascending by rank so equal ranks keep encounter order.
func rankAndSort(tools []catalog.Tool, ranks map[string]int) []Ranked {
	var kept []Ranked
	for _, t := range tools {
		if r, ok := ranks[t.ID]; ok {
			kept = append(kept, Ranked{Tool: t, Rank: r})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Rank < kept[j].Rank
	})
	return kept
}

// ProjectFlat returns the matched tools of box as a flat list ordered by
// their position in matched. A tool ID emitted once is never emitted
// again, which collapses catalogs that list the same tool under several
// sections. The returned tools are copies; box is not modified.
func ProjectFlat(box catalog.Toolbox, matched []string) []catalog.Tool {
	ranked := rankAndSort(Flatten(box), rankIndex(matched))

	seen := make(map[string]struct{}, len(ranked))
	tools := make([]catalog.Tool, 0, len(ranked))
	for _, r := range ranked {
		if _, dup := seen[r.Tool.ID]; dup {
			continue
		}
		seen[r.Tool.ID] = struct{}{}
		tools = append(tools, r.Tool)
	}
	return tools
}

// ProjectSections prunes box down to the entries containing matches. With
// no matches, box is returned unchanged. Each surviving section is a copy
// holding only its matched tools sorted by rank; sections with no matched
// tools survive only when their own ID matched. Surviving entries are
// reordered by the rank of their first remaining tool. An entry with no
// tools sorts with rank 0, and the sort is stable, so ties keep catalog
// order.
func ProjectSections(box catalog.Toolbox, matched []string) catalog.Toolbox {
	if len(matched) == 0 {
		return box
	}
	ranks := rankIndex(matched)

	type entry struct {
		node catalog.Node
		rank int
	}
	var kept []entry
	for _, n := range box {
		switch v := n.(type) {
		case catalog.Tool:
			if r, ok := ranks[v.ID]; ok {
				kept = append(kept, entry{node: v, rank: r})
			}
		case catalog.Section:
			children := rankAndSort(Flatten(catalog.Toolbox{v}), ranks)
			_, selfMatched := ranks[v.ID]
			if len(children) == 0 && !selfMatched {
				continue
			}

			elems := make([]catalog.Node, len(children))
			for i, c := range children {
				elems[i] = c.Tool
			}
			rank := 0
			if len(children) > 0 {
				rank = children[0].Rank
			}

			section := v
			section.Elems = elems
			kept = append(kept, entry{node: section, rank: rank})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].rank < kept[j].rank
	})

	out := make(catalog.Toolbox, len(kept))
	for i, e := range kept {
		out[i] = e.node
	}
	return out
}
