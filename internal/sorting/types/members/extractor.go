package members

import (
	"github.com/edarioq/prop-ordering/internal/sorting/common"
	"github.com/edarioq/prop-ordering/internal/sorting/field"

	sitter "github.com/smacker/go-tree-sitter"
)

var nodeTypes = []string{
	"interface_declaration",
	"type_alias_declaration",
}

// Extractor pulls the property signatures of an interface body or of a type
// alias whose value is an object type literal. Method, call, construct and
// index signatures are not part of the list and are never moved.
type Extractor struct{}

// NewExtractor creates a structural member extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) NodeTypes() []string {
	return nodeTypes
}

func (e *Extractor) Shape() field.Shape {
	return field.ShapeMembers
}

// Extract returns the property signatures of node when there are at least two
func (e *Extractor) Extract(node *sitter.Node, content []byte) (field.List, bool) {
	body := Body(node)
	if body == nil {
		return field.List{}, false
	}

	var fields []field.Field
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "property_signature" {
			continue
		}
		f := newField(member, content)
		f.Index = len(fields)
		fields = append(fields, f)
	}

	if len(fields) < 2 {
		return field.List{}, false
	}

	return field.List{
		Shape:  field.ShapeMembers,
		Node:   node,
		Fields: fields,
	}, true
}

// Body returns the member container of an interface or object-literal type
// alias, or nil for any other declaration
func Body(node *sitter.Node) *sitter.Node {
	switch node.Type() {
	case "interface_declaration":
		body := node.ChildByFieldName("body")
		if body != nil && (body.Type() == "interface_body" || body.Type() == "object_type") {
			return body
		}
	case "type_alias_declaration":
		value := node.ChildByFieldName("value")
		if value != nil && value.Type() == "object_type" {
			return value
		}
	}
	return nil
}

// IsInterface reports whether node is an interface declaration
func IsInterface(node *sitter.Node) bool {
	return node.Type() == "interface_declaration"
}

func newField(member *sitter.Node, content []byte) field.Field {
	f := field.Field{
		Kind:      field.KindNamed,
		Range:     common.NodeRange(member),
		Multiline: common.IsMultiline(member),
		HasValue:  true,
		// `name?: string`
		HasDefaultOrOptional: common.HasChildOfType(member, "?"),
	}

	f.Name, f.Named = common.ExtractKeyFromNode(member.ChildByFieldName("name"), content)
	return f
}
