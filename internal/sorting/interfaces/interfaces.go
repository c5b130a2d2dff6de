package interfaces

import (
	"github.com/edarioq/prop-ordering/internal/sorting/field"

	sitter "github.com/smacker/go-tree-sitter"
)

// Extractor turns a tree node into an orderable field list
type Extractor interface {
	// Extract returns the field list held by node. The boolean is false when
	// node does not contain an orderable list (fewer than two candidates,
	// wrong node kind, unsupported first parameter...).
	Extract(node *sitter.Node, content []byte) (field.List, bool)

	// NodeTypes returns the tree-sitter node kinds this extractor handles
	NodeTypes() []string

	// Shape returns the shape of the lists produced by this extractor
	Shape() field.Shape
}

// CallbackMatcher decides whether a field name looks like a callback.
// Implementations are name heuristics only; they never inspect types.
type CallbackMatcher interface {
	// IsCallback reports whether name should be treated as a callback
	IsCallback(name string) bool

	// GetName returns the matcher name for debugging
	GetName() string
}

// ShorthandPredicate reports whether a field belongs to the shorthand bucket
// (no value for attributes, defaulted or optional for the other shapes)
type ShorthandPredicate func(f field.Field) bool
