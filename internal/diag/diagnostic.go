// Package diag holds lint violations, their fixes and fix application.
package diag

import (
	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// Severity defines the importance of a violation.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Position is a 1-based line and column
type Position struct {
	Line   int `json:"line" msgpack:"line"`
	Column int `json:"column" msgpack:"column"`
}

// Edit replaces Range with NewText
type Edit struct {
	Range   field.Range `json:"range" msgpack:"range"`
	NewText string      `json:"newText" msgpack:"newText"`
}

// Fix is a set of edits that must be applied together
type Fix struct {
	Title string `json:"title" msgpack:"title"`
	Edits []Edit `json:"edits" msgpack:"edits"`
}

// Violation is one finding on one node
type Violation struct {
	Rule     string      `json:"rule" msgpack:"rule"`
	Severity Severity    `json:"severity" msgpack:"severity"`
	Message  string      `json:"message" msgpack:"message"`
	Range    field.Range `json:"range" msgpack:"range"`
	Start    Position    `json:"start" msgpack:"start"`
	End      Position    `json:"end" msgpack:"end"`
	Fix      *Fix        `json:"fix,omitempty" msgpack:"fix,omitempty"`
}

// Fixable reports whether the violation carries at least one edit
func (v Violation) Fixable() bool {
	return v.Fix != nil && len(v.Fix.Edits) > 0
}
