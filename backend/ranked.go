package backend

import (
	"context"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/project"
	"github.com/panelforge/toolpanel/rank"
)

// RankedName is the registry name of the in-process ranked searcher.
const RankedName = "ranked"

// RankedSearcher runs the weighted multi-key search over a catalog
// snapshot, entirely in process. The snapshot is flattened once at
// construction and treated as read-only afterwards.
type RankedSearcher struct {
	tools  []catalog.Tool
	keys   rank.Keys
	ranker *rank.Ranker
}

// NewRankedSearcher builds a searcher over box using the given match keys
// and thresholds.
func NewRankedSearcher(box catalog.Toolbox, keys rank.Keys, cfg rank.Config) *RankedSearcher {
	return &RankedSearcher{
		tools:  project.Flatten(box),
		keys:   keys,
		ranker: rank.NewRanker(cfg),
	}
}

// Name returns the registry name of this searcher.
func (s *RankedSearcher) Name() string { return RankedName }

// Search returns matching tool IDs, most relevant first.
func (s *RankedSearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := s.ranker.Search(s.tools, s.keys, query)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}
