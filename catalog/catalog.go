// Package catalog defines the tool catalog data model: a tree of sections,
// section labels, and tools, plus loading and validation helpers.
//
// The search and projection packages treat the catalog as a read-only
// snapshot. Nothing in this module mutates catalog nodes in place; results
// are always copies or parallel data.
package catalog

import (
	"errors"
	"fmt"
)

// Node is an entry in the catalog tree. The concrete types are Tool,
// Section, and Label; the set is closed.
type Node interface {
	// NodeID returns the entry identifier, or "" for unidentified labels.
	NodeID() string

	isNode()
}

// Tool is a selectable catalog entry.
type Tool struct {
	ID          string
	Name        string
	Description string

	// Attributes holds additional searchable string attributes keyed by
	// name, e.g. "help" or "edam_operations".
	Attributes map[string]string
}

// NodeID returns the tool identifier.
func (t Tool) NodeID() string { return t.ID }

func (Tool) isNode() {}

// Attribute returns the searchable value of the named attribute. The
// built-in fields answer to "id", "name", and "description"; anything else
// is looked up in Attributes. A missing attribute is the empty string.
func (t Tool) Attribute(key string) string {
	switch key {
	case "id":
		return t.ID
	case "name":
		return t.Name
	case "description":
		return t.Description
	default:
		return t.Attributes[key]
	}
}

// Label is a non-selectable grouping marker inside a section. Labels are
// excluded from search matching.
type Label struct {
	ID   string
	Text string
}

// NodeID returns the label identifier.
func (l Label) NodeID() string { return l.ID }

func (Label) isNode() {}

// Section groups tools and labels under a heading. Sections appear at the
// top level of a toolbox and may nest one level deeper, though nested
// sections are skipped by flattening.
type Section struct {
	ID    string
	Name  string
	Elems []Node
}

// NodeID returns the section identifier.
func (s Section) NodeID() string { return s.ID }

func (Section) isNode() {}

// Toolbox is the ordered top-level entries of the catalog. Entries are
// usually sections; a bare Tool at the top level is a section-less tool.
type Toolbox []Node

// ErrDuplicateID reports a tool ID that appears more than once.
var ErrDuplicateID = errors.New("catalog: duplicate tool id")

// Validate checks that tool IDs are unique across the whole catalog.
//
// Some catalog sources list the same tool under several sections; such
// catalogs fail Validate but are still searchable, and projection
// deduplicates them on output. Call Validate only when the source is
// expected to be strict.
func (tb Toolbox) Validate() error {
	seen := make(map[string]struct{})
	return validateNodes(tb, seen)
}

func validateNodes(nodes []Node, seen map[string]struct{}) error {
	for _, n := range nodes {
		switch v := n.(type) {
		case Tool:
			if _, dup := seen[v.ID]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateID, v.ID)
			}
			seen[v.ID] = struct{}{}
		case Section:
			if err := validateNodes(v.Elems, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
