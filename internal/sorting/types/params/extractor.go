package params

import (
	"github.com/edarioq/prop-ordering/internal/sorting/common"
	"github.com/edarioq/prop-ordering/internal/sorting/field"

	sitter "github.com/smacker/go-tree-sitter"
)

var nodeTypes = []string{
	"function_declaration",
	"generator_function_declaration",
	"function_expression",
	"function",
	"generator_function",
	"arrow_function",
	"method_definition",
}

// Extractor pulls the entries of a destructured first parameter
type Extractor struct {
	// RequireComponent rejects functions that fail the component heuristic.
	// By default any function whose first parameter is an object pattern is
	// considered.
	RequireComponent bool
}

// NewExtractor creates a destructured parameter extractor
func NewExtractor(requireComponent bool) *Extractor {
	return &Extractor{RequireComponent: requireComponent}
}

func (e *Extractor) NodeTypes() []string {
	return nodeTypes
}

func (e *Extractor) Shape() field.Shape {
	return field.ShapeParams
}

// Extract returns the entries of the first parameter when it is an object
// pattern with at least two entries
func (e *Extractor) Extract(node *sitter.Node, content []byte) (field.List, bool) {
	pattern := firstParamPattern(node)
	if pattern == nil || pattern.Type() != "object_pattern" {
		return field.List{}, false
	}

	component := IsComponent(node, content)
	if e.RequireComponent && !component {
		return field.List{}, false
	}

	var fields []field.Field
	for i := 0; i < int(pattern.NamedChildCount()); i++ {
		child := pattern.NamedChild(i)
		f, ok := newField(child, content)
		if !ok {
			continue
		}
		f.Index = len(fields)
		fields = append(fields, f)
	}

	if len(fields) < 2 {
		return field.List{}, false
	}

	return field.List{
		Shape:     field.ShapeParams,
		Node:      node,
		Fields:    fields,
		Component: component,
	}, true
}

// firstParamPattern returns the binding pattern of the first parameter
func firstParamPattern(fn *sitter.Node) *sitter.Node {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		// Single unparenthesized arrow parameter, never a pattern
		return nil
	}

	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)
		switch param.Type() {
		case "comment":
			continue
		case "required_parameter", "optional_parameter":
			return param.ChildByFieldName("pattern")
		case "assignment_pattern":
			return param.ChildByFieldName("left")
		default:
			return param
		}
	}
	return nil
}

func newField(entry *sitter.Node, content []byte) (field.Field, bool) {
	f := field.Field{
		Kind:      field.KindNamed,
		Range:     common.NodeRange(entry),
		Multiline: common.IsMultiline(entry),
		HasValue:  true,
	}

	switch entry.Type() {
	case "shorthand_property_identifier_pattern":
		f.Name, f.Named = common.ExtractKeyFromNode(entry, content)

	case "object_assignment_pattern":
		// { disabled = false }
		f.HasDefaultOrOptional = true
		left := entry.ChildByFieldName("left")
		if left != nil && left.Type() == "shorthand_property_identifier_pattern" {
			f.Name, f.Named = common.ExtractKeyFromNode(left, content)
		}

	case "pair_pattern":
		// { label: text } or { label: text = "" }
		f.Name, f.Named = common.ExtractKeyFromNode(entry.ChildByFieldName("key"), content)
		if value := entry.ChildByFieldName("value"); value != nil && value.Type() == "assignment_pattern" {
			f.HasDefaultOrOptional = true
		}

	case "rest_pattern":
		f.Kind = field.KindRest

	default:
		// comments and anything the grammar adds later
		return field.Field{}, false
	}

	return f, true
}
