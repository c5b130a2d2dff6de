package field

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Kind distinguishes ordinary named entries from rest collectors
type Kind uint8

const (
	KindNamed Kind = iota
	// KindRest is a collector entry such as `...rest`. It is never classified
	// and always sorts after every named entry.
	KindRest
)

func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindRest:
		return "rest"
	}
	return "unknown"
}

// Shape identifies which syntactic construct a field list was extracted from
type Shape uint8

const (
	ShapeParams Shape = iota
	ShapeAttributes
	ShapeMembers
)

func (s Shape) String() string {
	switch s {
	case ShapeParams:
		return "params"
	case ShapeAttributes:
		return "attributes"
	case ShapeMembers:
		return "members"
	}
	return "unknown"
}

// Range is a half-open byte span [Start, End) into the original content
type Range struct {
	Start int `json:"start" msgpack:"start"`
	End   int `json:"end" msgpack:"end"`
}

// Len returns the number of bytes covered by the range
func (r Range) Len() int {
	return r.End - r.Start
}

// Overlaps reports whether two ranges share at least one byte
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Field is one orderable entry of a field list
type Field struct {
	Name string
	// Named is false for entries whose name cannot be determined statically:
	// rest collectors and computed keys.
	Named bool
	Kind  Kind

	HasDefaultOrOptional bool
	Multiline            bool
	HasValue             bool

	Range Range
	// Index is the position of the field inside its List and serves as its
	// identity for the duration of one visit.
	Index int
}

// Text returns the exact source text of the field
func (f Field) Text(content []byte) []byte {
	return content[f.Range.Start:f.Range.End]
}

// List is the ordered sequence of fields extracted from one tree node
type List struct {
	Shape  Shape
	Node   *sitter.Node
	Fields []Field
	// Component records the advisory "looks like a component" heuristic for
	// parameter lists. It is informational unless a rule requires it.
	Component bool
}

// Len returns the number of fields in the list
func (l List) Len() int {
	return len(l.Fields)
}

// Names returns the field names in list order, using "" for unnamed entries
func (l List) Names() []string {
	names := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		names[i] = f.Name
	}
	return names
}
