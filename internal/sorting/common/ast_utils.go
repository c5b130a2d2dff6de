package common

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// NodeText returns the exact source text of a node
func NodeText(node *sitter.Node, content []byte) string {
	r := NodeRange(node)
	return string(content[r.Start:r.End])
}

// NodeRange converts the node's byte offsets into a field.Range
func NodeRange(node *sitter.Node) field.Range {
	return field.Range{
		Start: safecast.MustConv[int](node.StartByte()),
		End:   safecast.MustConv[int](node.EndByte()),
	}
}

// IsMultiline reports whether the node spans more than one source row
func IsMultiline(node *sitter.Node) bool {
	return node.StartPoint().Row != node.EndPoint().Row
}

// ExtractKeyFromNode extracts the static name of a property key node.
// The boolean is false for computed keys, whose name is only known at runtime.
func ExtractKeyFromNode(keyNode *sitter.Node, content []byte) (string, bool) {
	if keyNode == nil {
		return "", false
	}
	switch keyNode.Type() {
	case "computed_property_name":
		return "", false
	case "string":
		return TrimQuotes(NodeText(keyNode, content)), true
	default:
		// property_identifier, shorthand patterns, numbers, private names,
		// jsx_namespace_name
		return NodeText(keyNode, content), true
	}
}

// TrimQuotes removes surrounding quotes from a string
func TrimQuotes(text string) string {
	return strings.Trim(text, "\"'`")
}

// Unparenthesize strips any number of wrapping parenthesized_expression nodes
func Unparenthesize(node *sitter.Node) *sitter.Node {
	for node != nil && node.Type() == "parenthesized_expression" {
		if node.NamedChildCount() == 0 {
			return node
		}
		node = node.NamedChild(0)
	}
	return node
}

// IsJSX reports whether the node is a JSX element, fragment or self-closing tag
func IsJSX(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	}
	return false
}

// IsCapitalized reports whether name starts with an upper-case letter
func IsCapitalized(name string) bool {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return false
	}
	return unicode.IsUpper(r)
}

// HasChildOfType reports whether any direct (named or anonymous) child has
// the given type
func HasChildOfType(node *sitter.Node, typ string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == typ {
			return true
		}
	}
	return false
}
