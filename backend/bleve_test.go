package backend

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/query"
)

func fullTextBox() catalog.Toolbox {
	return catalog.Toolbox{
		catalog.Section{ID: "operation_3192", Name: "Trimming", Elems: []catalog.Node{
			catalog.Tool{
				ID:          "skewer",
				Name:        "Skewer",
				Description: "Adapter trimming for paired-end reads",
				Attributes:  map[string]string{"edam_operations": "operation_3192"},
			},
			catalog.Tool{ID: "fastqc", Name: "FastQC", Description: "Quality control checks on sequence data"},
		}},
		catalog.Tool{ID: "upload", Name: "Upload Data", Description: "Upload files into the workspace"},
	}
}

func newFullText(t *testing.T) *FullTextSearcher {
	t.Helper()
	s, err := NewFullTextSearcher(fullTextBox())
	if err != nil {
		t.Fatalf("NewFullTextSearcher() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFullTextSearcher_Search(t *testing.T) {
	s := newFullText(t)

	got, err := s.Search(context.Background(), "trimming", 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := []string{"skewer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() = %v, want %v", got, want)
	}
}

func TestFullTextSearcher_SearchByName(t *testing.T) {
	s := newFullText(t)

	got, err := s.Search(context.Background(), "skewer", 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0] != "skewer" {
		t.Errorf("Search() = %v, want [skewer]", got)
	}
}

func TestFullTextSearcher_SearchLimit(t *testing.T) {
	s := newFullText(t)

	got, err := s.SearchSettings(context.Background(), nil, query.ViewDefault, 1)
	if err != nil {
		t.Fatalf("SearchSettings() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("SearchSettings() returned %d results, want 1", len(got))
	}
}

func TestFullTextSearcher_SettingsMatchAll(t *testing.T) {
	s := newFullText(t)

	got, err := s.SearchSettings(context.Background(), nil, query.ViewDefault, 0)
	if err != nil {
		t.Fatalf("SearchSettings() error = %v", err)
	}
	sort.Strings(got)
	want := []string{"fastqc", "skewer", "upload"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchSettings() = %v, want %v", got, want)
	}
}

func TestFullTextSearcher_SettingsByName(t *testing.T) {
	s := newFullText(t)

	settings := query.Settings{{Key: "name", Value: "skewer"}}
	got, err := s.SearchSettings(context.Background(), settings, query.ViewDefault, 0)
	if err != nil {
		t.Fatalf("SearchSettings() error = %v", err)
	}
	if len(got) != 1 || got[0] != "skewer" {
		t.Errorf("SearchSettings() = %v, want [skewer]", got)
	}
}

func TestFullTextSearcher_SettingsByExactID(t *testing.T) {
	s := newFullText(t)

	settings := query.Settings{{Key: "id", Value: "fastqc"}}
	got, err := s.SearchSettings(context.Background(), settings, query.ViewDefault, 0)
	if err != nil {
		t.Fatalf("SearchSettings() error = %v", err)
	}
	want := []string{"fastqc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchSettings() = %v, want %v", got, want)
	}
}

func TestFullTextSearcher_SettingsBySection(t *testing.T) {
	s := newFullText(t)

	settings := query.Settings{{Key: "section", Value: "trimming"}}
	got, err := s.SearchSettings(context.Background(), settings, query.ViewDefault, 0)
	if err != nil {
		t.Fatalf("SearchSettings() error = %v", err)
	}
	sort.Strings(got)
	want := []string{"fastqc", "skewer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchSettings() = %v, want %v", got, want)
	}
}

func TestFullTextSearcher_SettingsOntologyView(t *testing.T) {
	s := newFullText(t)

	settings := query.Settings{{Key: "section", Value: "trimming"}}
	got, err := s.SearchSettings(context.Background(), settings, "ontology:edam_operations", 0)
	if err != nil {
		t.Fatalf("SearchSettings() error = %v", err)
	}
	want := []string{"skewer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchSettings() = %v, want %v", got, want)
	}
}

func TestFullTextSearcher_Name(t *testing.T) {
	s := newFullText(t)
	if s.Name() != FullTextName {
		t.Errorf("Name() = %q, want %q", s.Name(), FullTextName)
	}
}
