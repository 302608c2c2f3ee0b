package backend

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	searchquery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/query"
)

// FullTextName is the registry name of the bleve full-text searcher.
const FullTextName = "fulltext"

// Indexed field names. These are the same fields the full-text query
// dialect built by the query package addresses, so a catalog indexed here
// answers the queries the builder produces.
const (
	fieldName        = "name"
	fieldNameExact   = "name_exact"
	fieldDescription = "description"
	fieldID          = "id"
	fieldIDExact     = "id_exact"
	fieldSection     = "section"
)

// Ontology attribute keys indexed verbatim from tool attributes.
var ontologyFields = []string{"edam_operations", "edam_topics"}

// toolDoc is the indexed document for one catalog tool.
type toolDoc struct {
	Name        string            `json:"name"`
	NameExact   string            `json:"name_exact"`
	Description string            `json:"description"`
	ID          string            `json:"id"`
	IDExact     string            `json:"id_exact"`
	Section     string            `json:"section"`
	Ontology    map[string]string `json:"ontology,omitempty"`
}

// FullTextSearcher answers catalog queries from an in-memory bleve index,
// one document per tool. It stands in for the remote full-text backend in
// deployments that have none.
type FullTextSearcher struct {
	box   catalog.Toolbox
	index bleve.Index
}

// NewFullTextSearcher indexes box and returns a searcher over it. Callers
// own the returned searcher and should Close it when done.
func NewFullTextSearcher(box catalog.Toolbox) (*FullTextSearcher, error) {
	index, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("backend: create index: %w", err)
	}

	s := &FullTextSearcher{box: box, index: index}
	if err := s.indexToolbox(); err != nil {
		_ = index.Close()
		return nil, err
	}
	return s, nil
}

func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(fieldName, text)
	doc.AddFieldMappingsAt(fieldNameExact, exact)
	doc.AddFieldMappingsAt(fieldDescription, text)
	doc.AddFieldMappingsAt(fieldID, text)
	doc.AddFieldMappingsAt(fieldIDExact, exact)
	doc.AddFieldMappingsAt(fieldSection, text)

	ontology := bleve.NewDocumentMapping()
	for _, field := range ontologyFields {
		ontology.AddFieldMappingsAt(field, exact)
	}
	doc.AddSubDocumentMapping("ontology", ontology)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

func (s *FullTextSearcher) indexToolbox() error {
	batch := s.index.NewBatch()
	add := func(tool catalog.Tool, sectionName string) error {
		doc := toolDoc{
			Name:        tool.Name,
			NameExact:   tool.Name,
			Description: tool.Description,
			ID:          tool.ID,
			IDExact:     tool.ID,
			Section:     sectionName,
		}
		for _, field := range ontologyFields {
			if v := tool.Attribute(field); v != "" {
				if doc.Ontology == nil {
					doc.Ontology = make(map[string]string)
				}
				doc.Ontology[field] = v
			}
		}
		return batch.Index(tool.ID, doc)
	}

	for _, n := range s.box {
		switch v := n.(type) {
		case catalog.Tool:
			if err := add(v, ""); err != nil {
				return fmt.Errorf("backend: index %s: %w", v.ID, err)
			}
		case catalog.Section:
			for _, child := range v.Elems {
				if t, ok := child.(catalog.Tool); ok {
					if err := add(t, v.Name); err != nil {
						return fmt.Errorf("backend: index %s: %w", t.ID, err)
					}
				}
			}
		}
	}
	return s.index.Batch(batch)
}

// Name returns the registry name of this searcher.
func (s *FullTextSearcher) Name() string { return FullTextName }

// Close releases the underlying index.
func (s *FullTextSearcher) Close() error {
	return s.index.Close()
}

// Search treats q as free text over tool names and descriptions, with
// name matches outranking description matches. Results are tool IDs in
// score order.
func (s *FullTextSearcher) Search(ctx context.Context, q string, limit int) ([]string, error) {
	name := bleve.NewMatchQuery(q)
	name.SetField(fieldName)
	name.SetBoost(3)

	fuzzyName := bleve.NewMatchQuery(q)
	fuzzyName.SetField(fieldName)
	fuzzyName.SetFuzziness(1)
	fuzzyName.SetBoost(2)

	description := bleve.NewMatchQuery(q)
	description.SetField(fieldDescription)

	return s.run(ctx, bleve.NewDisjunctionQuery(name, fuzzyName, description), limit)
}

// SearchSettings evaluates structured filter settings against the index.
// The clauses mirror the full-text dialect of query.BuildFullText: the
// name filter expands across name, exact name, and description; a section
// filter in an ontology view resolves to the view's ontology field; an id
// filter targets the exact id field; everything else matches its own
// field. All clauses must hold.
func (s *FullTextSearcher) SearchSettings(ctx context.Context, settings query.Settings, view string, limit int) ([]string, error) {
	var clauses []searchquery.Query

	if name := settings.Get("name"); name != "" {
		byName := bleve.NewMatchQuery(name)
		byName.SetField(fieldName)
		byExact := bleve.NewTermQuery(name)
		byExact.SetField(fieldNameExact)
		byDescription := bleve.NewMatchQuery(name)
		byDescription.SetField(fieldDescription)
		clauses = append(clauses, bleve.NewDisjunctionQuery(byName, byExact, byDescription))
	}

	for _, setting := range settings {
		if setting.Key == "name" {
			continue
		}
		value := setting.Value
		if setting.Flag {
			value = "true"
		}
		if value == "" {
			continue
		}

		switch {
		case setting.Key == "section" && view != query.ViewDefault:
			if field, id := query.ResolveOntology(view, value, s.box); field != "" && id != "" {
				term := bleve.NewTermQuery(id)
				term.SetField("ontology." + field)
				clauses = append(clauses, term)
				continue
			}
			match := bleve.NewMatchQuery(value)
			match.SetField(fieldSection)
			clauses = append(clauses, match)
		case setting.Key == "id":
			term := bleve.NewTermQuery(value)
			term.SetField(fieldIDExact)
			clauses = append(clauses, term)
		default:
			match := bleve.NewMatchQuery(value)
			match.SetField(setting.Key)
			clauses = append(clauses, match)
		}
	}

	if len(clauses) == 0 {
		return s.run(ctx, bleve.NewMatchAllQuery(), limit)
	}
	return s.run(ctx, bleve.NewConjunctionQuery(clauses...), limit)
}

func (s *FullTextSearcher) run(ctx context.Context, q searchquery.Query, limit int) ([]string, error) {
	if limit <= 0 {
		count, err := s.index.DocCount()
		if err != nil {
			return nil, fmt.Errorf("backend: doc count: %w", err)
		}
		limit = int(count)
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("backend: search: %w", err)
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
