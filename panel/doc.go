// Package panel provides a unified facade for searching a tool catalog.
//
// A [Panel] ties the pieces of this module together: it holds a read-only
// catalog snapshot, runs queries through either the in-process ranked
// searcher or a configured backend, and projects the matches back onto the
// catalog for display.
//
// # Basic Usage
//
//	box, err := catalog.LoadFile("toolbox.yml")
//	if err != nil { ... }
//
//	p, err := panel.New(panel.Options{Toolbox: box})
//	if err != nil { ... }
//
//	// Flat list of matching tools, most relevant first.
//	tools, err := p.FilterTools(ctx, "cutadapt")
//
//	// Or the catalog tree pruned to matching sections.
//	sections, err := p.FilterSections(ctx, "cutadapt")
//
// # Swapping the search backend
//
// By default the panel ranks tools in process with [rank.Ranker]. Any
// [backend.Searcher] can take over instead, e.g. the bleve full-text
// index:
//
//	ft, err := backend.NewFullTextSearcher(box)
//	if err != nil { ... }
//	defer ft.Close()
//
//	p, err := panel.New(panel.Options{Toolbox: box, Searcher: ft})
//
// The panel itself is stateless across calls and safe for concurrent use
// as long as the catalog snapshot is not mutated, which nothing in this
// module does.
package panel
