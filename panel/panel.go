package panel

import (
	"context"
	"strings"

	"github.com/panelforge/toolpanel/backend"
	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/project"
	"github.com/panelforge/toolpanel/query"
	"github.com/panelforge/toolpanel/rank"
)

// Panel is the facade for catalog search: query in, ordered tools or
// pruned sections out.
type Panel struct {
	box      catalog.Toolbox
	tools    []catalog.Tool
	keys     rank.Keys
	ranker   *rank.Ranker
	searcher backend.Searcher
}

// New creates a Panel with the given options.
func New(opts Options) (*Panel, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	return &Panel{
		box:      opts.Toolbox,
		tools:    project.Flatten(opts.Toolbox),
		keys:     opts.Keys,
		ranker:   rank.NewRanker(opts.Rank),
		searcher: opts.Searcher,
	}, nil
}

// Toolbox returns the catalog snapshot the panel searches.
func (p *Panel) Toolbox() catalog.Toolbox { return p.box }

// Tools returns the flattened catalog tools in encounter order.
func (p *Panel) Tools() []catalog.Tool { return p.tools }

// FilterTools returns the tools matching q as a flat list, most relevant
// first. A blank query matches nothing.
func (p *Panel) FilterTools(ctx context.Context, q string) ([]catalog.Tool, error) {
	ids, err := p.search(ctx, q)
	if err != nil {
		return nil, err
	}
	return project.ProjectFlat(p.box, ids), nil
}

// FilterSections returns the catalog pruned to the sections containing
// matches for q. A blank query returns the catalog unchanged.
func (p *Panel) FilterSections(ctx context.Context, q string) (catalog.Toolbox, error) {
	ids, err := p.search(ctx, q)
	if err != nil {
		return nil, err
	}
	return project.ProjectSections(p.box, ids), nil
}

// Filter runs structured settings through the search path: the settings
// are rendered to the simple dialect and matched like any other query.
func (p *Panel) Filter(ctx context.Context, settings query.Settings) ([]catalog.Tool, error) {
	return p.FilterTools(ctx, query.BuildSimple(settings))
}

// BuildBackendQuery renders settings in the backend full-text dialect for
// the given panel view, resolving section filters against this panel's
// catalog.
func (p *Panel) BuildBackendQuery(settings query.Settings, view string) string {
	return query.BuildFullText(settings, view, p.box)
}

func (p *Panel) search(ctx context.Context, q string) ([]string, error) {
	if strings.TrimSpace(q) == "" {
		return nil, nil
	}
	if p.searcher != nil {
		return p.searcher.Search(ctx, q, 0)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.ranker.Search(p.tools, p.keys, q), nil
}
