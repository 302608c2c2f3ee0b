package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Node class discriminants used by catalog files.
const (
	classTool    = "Tool"
	classSection = "ToolSection"
	classLabel   = "ToolSectionLabel"
)

// ErrUnknownClass reports a catalog file entry with an unrecognized
// model_class.
var ErrUnknownClass = errors.New("catalog: unknown model_class")

// rawNode is the on-disk shape of one catalog entry. The model_class field
// discriminates the node type; entries without one are tools.
type rawNode struct {
	ModelClass  string            `yaml:"model_class"`
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Text        string            `yaml:"text"`
	Attributes  map[string]string `yaml:"attributes"`
	Elems       []rawNode         `yaml:"elems"`
}

// Load reads a toolbox from YAML. JSON catalogs load too, since YAML is a
// superset. An empty document yields an empty toolbox.
func Load(r io.Reader) (Toolbox, error) {
	var raw []rawNode
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return convertNodes(raw)
}

// LoadFile reads a toolbox from the file at path.
func LoadFile(path string) (Toolbox, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func convertNodes(raw []rawNode) ([]Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	nodes := make([]Node, 0, len(raw))
	for _, rn := range raw {
		n, err := rn.node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (rn rawNode) node() (Node, error) {
	switch rn.ModelClass {
	case classSection:
		elems, err := convertNodes(rn.Elems)
		if err != nil {
			return nil, err
		}
		return Section{ID: rn.ID, Name: rn.Name, Elems: elems}, nil
	case classLabel:
		return Label{ID: rn.ID, Text: rn.Text}, nil
	case classTool, "":
		return Tool{
			ID:          rn.ID,
			Name:        rn.Name,
			Description: rn.Description,
			Attributes:  rn.Attributes,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, rn.ModelClass)
	}
}
