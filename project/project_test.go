package project

import (
	"reflect"
	"testing"

	"github.com/panelforge/toolpanel/catalog"
)

func testBox() catalog.Toolbox {
	return catalog.Toolbox{
		catalog.Section{ID: "preprocessing", Name: "Preprocessing", Elems: []catalog.Node{
			catalog.Label{ID: "trimming", Text: "Read trimming"},
			catalog.Tool{ID: "t1", Name: "Cutadapt"},
			catalog.Tool{ID: "t2", Name: "Trimmomatic"},
		}},
		catalog.Section{ID: "mapping", Name: "Mapping", Elems: []catalog.Node{
			catalog.Tool{ID: "t3", Name: "BWA-MEM"},
		}},
		catalog.Tool{ID: "t4", Name: "Upload Data"},
	}
}

func toolIDs(tools []catalog.Tool) []string {
	ids := make([]string, len(tools))
	for i, t := range tools {
		ids[i] = t.ID
	}
	return ids
}

func TestFlatten(t *testing.T) {
	got := toolIDs(Flatten(testBox()))
	want := []string{"t1", "t2", "t3", "t4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_SkipsNestedSections(t *testing.T) {
	box := catalog.Toolbox{
		catalog.Section{ID: "outer", Name: "Outer", Elems: []catalog.Node{
			catalog.Tool{ID: "t1", Name: "Visible"},
			catalog.Section{ID: "inner", Name: "Inner", Elems: []catalog.Node{
				catalog.Tool{ID: "t2", Name: "Hidden"},
			}},
		}},
	}

	got := toolIDs(Flatten(box))
	want := []string{"t1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Errorf("Flatten(nil) = %v, want empty", got)
	}
}

func TestProjectFlat_OrderFollowsMatches(t *testing.T) {
	got := toolIDs(ProjectFlat(testBox(), []string{"t3", "t1"}))
	want := []string{"t3", "t1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectFlat() = %v, want %v", got, want)
	}
}

func TestProjectFlat_DeduplicatesMatchList(t *testing.T) {
	got := toolIDs(ProjectFlat(testBox(), []string{"t1", "t1", "t2"}))
	want := []string{"t1", "t2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectFlat() = %v, want %v", got, want)
	}
}

func TestProjectFlat_DeduplicatesRepeatedCatalogEntries(t *testing.T) {
	// The same tool listed under two sections comes back once.
	box := catalog.Toolbox{
		catalog.Section{ID: "a", Name: "A", Elems: []catalog.Node{
			catalog.Tool{ID: "t1", Name: "Cutadapt"},
		}},
		catalog.Section{ID: "b", Name: "B", Elems: []catalog.Node{
			catalog.Tool{ID: "t1", Name: "Cutadapt"},
			catalog.Tool{ID: "t2", Name: "Trimmomatic"},
		}},
	}

	got := toolIDs(ProjectFlat(box, []string{"t1", "t2"}))
	want := []string{"t1", "t2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectFlat() = %v, want %v", got, want)
	}
}

func TestProjectFlat_NoMatches(t *testing.T) {
	if got := ProjectFlat(testBox(), nil); len(got) != 0 {
		t.Errorf("ProjectFlat() = %v, want empty", got)
	}
}

func TestProjectFlat_DoesNotMutateCatalog(t *testing.T) {
	box := testBox()
	want := testBox()

	ProjectFlat(box, []string{"t2", "t1"})
	if !reflect.DeepEqual(box, want) {
		t.Error("ProjectFlat() mutated the catalog")
	}
}

func TestProjectSections_EmptyMatchesReturnsCatalogUnchanged(t *testing.T) {
	box := testBox()
	got := ProjectSections(box, nil)
	if !reflect.DeepEqual(got, box) {
		t.Error("ProjectSections() with no matches should return the catalog unchanged")
	}
}

func TestProjectSections_PrunesUnmatchedChildren(t *testing.T) {
	got := ProjectSections(testBox(), []string{"t2"})
	if len(got) != 1 {
		t.Fatalf("ProjectSections() kept %d entries, want 1", len(got))
	}

	section, ok := got[0].(catalog.Section)
	if !ok {
		t.Fatalf("got[0] = %T, want Section", got[0])
	}
	if section.ID != "preprocessing" {
		t.Errorf("section.ID = %q, want preprocessing", section.ID)
	}
	if len(section.Elems) != 1 {
		t.Fatalf("section has %d elems, want 1", len(section.Elems))
	}
	if tool := section.Elems[0].(catalog.Tool); tool.ID != "t2" {
		t.Errorf("surviving child = %q, want t2", tool.ID)
	}
}

func TestProjectSections_ChildrenSortedByRank(t *testing.T) {
	got := ProjectSections(testBox(), []string{"t2", "t1"})
	section := got[0].(catalog.Section)
	ids := []string{
		section.Elems[0].(catalog.Tool).ID,
		section.Elems[1].(catalog.Tool).ID,
	}
	want := []string{"t2", "t1"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("section children = %v, want %v", ids, want)
	}
}

func TestProjectSections_SectionsReorderedByFirstChildRank(t *testing.T) {
	got := ProjectSections(testBox(), []string{"t3", "t1"})
	if len(got) != 2 {
		t.Fatalf("ProjectSections() kept %d entries, want 2", len(got))
	}
	first := got[0].(catalog.Section)
	second := got[1].(catalog.Section)
	if first.ID != "mapping" || second.ID != "preprocessing" {
		t.Errorf("section order = [%s %s], want [mapping preprocessing]", first.ID, second.ID)
	}
}

func TestProjectSections_SelfMatchedSectionSurvivesEmpty(t *testing.T) {
	got := ProjectSections(testBox(), []string{"mapping"})
	if len(got) != 1 {
		t.Fatalf("ProjectSections() kept %d entries, want 1", len(got))
	}
	section := got[0].(catalog.Section)
	if section.ID != "mapping" {
		t.Errorf("section.ID = %q, want mapping", section.ID)
	}
	if len(section.Elems) != 0 {
		t.Errorf("section has %d elems, want 0", len(section.Elems))
	}
}

func TestProjectSections_TopLevelToolKept(t *testing.T) {
	got := ProjectSections(testBox(), []string{"t4"})
	if len(got) != 1 {
		t.Fatalf("ProjectSections() kept %d entries, want 1", len(got))
	}
	if tool, ok := got[0].(catalog.Tool); !ok || tool.ID != "t4" {
		t.Errorf("got[0] = %#v, want section-less tool t4", got[0])
	}
}

func TestProjectSections_DoesNotMutateCatalog(t *testing.T) {
	box := testBox()
	want := testBox()

	ProjectSections(box, []string{"t3", "t1"})
	if !reflect.DeepEqual(box, want) {
		t.Error("ProjectSections() mutated the catalog")
	}
}
