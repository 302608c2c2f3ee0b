package backend

import (
	"context"
	"reflect"
	"testing"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/rank"
)

func rankedBox() catalog.Toolbox {
	return catalog.Toolbox{
		catalog.Section{ID: "preprocessing", Name: "Preprocessing", Elems: []catalog.Node{
			catalog.Tool{ID: "cutadapt", Name: "Cutadapt", Description: "Adapter trimming of reads"},
			catalog.Tool{ID: "trimmomatic", Name: "Trimmomatic", Description: "Flexible read trimming"},
		}},
	}
}

func rankedKeys() rank.Keys {
	return rank.Keys{Keys: []rank.Key{
		{Name: "name", Weight: 2},
		{Name: "description", Weight: 1},
	}}
}

func TestRankedSearcher_Search(t *testing.T) {
	s := NewRankedSearcher(rankedBox(), rankedKeys(), rank.Config{})

	got, err := s.Search(context.Background(), "trim", 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := []string{"trimmomatic", "cutadapt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() = %v, want %v", got, want)
	}
}

func TestRankedSearcher_Limit(t *testing.T) {
	s := NewRankedSearcher(rankedBox(), rankedKeys(), rank.Config{})

	got, err := s.Search(context.Background(), "trim", 1)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Search() returned %d results, want 1", len(got))
	}
}

func TestRankedSearcher_CanceledContext(t *testing.T) {
	s := NewRankedSearcher(rankedBox(), rankedKeys(), rank.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Search(ctx, "trim", 0); err == nil {
		t.Error("Search() with canceled context returned nil error")
	}
}

func TestRankedSearcher_Name(t *testing.T) {
	s := NewRankedSearcher(rankedBox(), rankedKeys(), rank.Config{})
	if s.Name() != RankedName {
		t.Errorf("Name() = %q, want %q", s.Name(), RankedName)
	}
}
