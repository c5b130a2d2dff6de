package attributes

import (
	"github.com/edarioq/prop-ordering/internal/sorting/common"
	"github.com/edarioq/prop-ordering/internal/sorting/field"

	sitter "github.com/smacker/go-tree-sitter"
)

var nodeTypes = []string{
	"jsx_opening_element",
	"jsx_self_closing_element",
}

// Extractor pulls the plain attributes of a JSX tag. Spread attributes
// ({...props}) are left out of the list entirely so they are never moved.
type Extractor struct{}

// NewExtractor creates a JSX attribute extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) NodeTypes() []string {
	return nodeTypes
}

func (e *Extractor) Shape() field.Shape {
	return field.ShapeAttributes
}

// Extract returns the jsx_attribute children of a tag with at least two of them
func (e *Extractor) Extract(node *sitter.Node, content []byte) (field.List, bool) {
	var fields []field.Field

	for i := 0; i < int(node.NamedChildCount()); i++ {
		attr := node.NamedChild(i)
		if attr.Type() != "jsx_attribute" {
			continue
		}
		f := newField(attr, content)
		f.Index = len(fields)
		fields = append(fields, f)
	}

	if len(fields) < 2 {
		return field.List{}, false
	}

	return field.List{
		Shape:  field.ShapeAttributes,
		Node:   node,
		Fields: fields,
	}, true
}

func newField(attr *sitter.Node, content []byte) field.Field {
	f := field.Field{
		Kind:      field.KindNamed,
		Range:     common.NodeRange(attr),
		Multiline: common.IsMultiline(attr),
		// <input disabled /> has no "=" token
		HasValue: common.HasChildOfType(attr, "="),
	}

	if attr.NamedChildCount() > 0 {
		// property_identifier or jsx_namespace_name (xlink:href)
		f.Name, f.Named = common.ExtractKeyFromNode(attr.NamedChild(0), content)
	}

	return f
}
