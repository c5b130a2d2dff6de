package reconstruction

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/edarioq/prop-ordering/internal/diag"
	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// ErrForeignSeparator is returned when something other than a comma and
// whitespace sits between two fields. Rebuilding the span would drop it.
var ErrForeignSeparator = errors.New("separator holds more than a comma")

// JoinedReconstructor rewrites the whole span from the first to the last
// field as a single edit
type JoinedReconstructor struct{}

// NewJoinedReconstructor creates a new joined reconstructor
func NewJoinedReconstructor() *JoinedReconstructor {
	return &JoinedReconstructor{}
}

// Reconstruct joins the sorted field texts, reusing the original separators
// position by position so multi-line layouts survive. Lists with comments
// between fields get no fix.
func (r *JoinedReconstructor) Reconstruct(list field.List, perm []int, content []byte) (*diag.Fix, error) {
	if err := checkPermutation(list, perm, content); err != nil {
		return nil, err
	}
	fields := list.Fields
	if len(fields) == 0 {
		return &diag.Fix{Title: fixTitle(list)}, nil
	}

	separators, clean := r.separators(fields, content)
	if !clean {
		return nil, fmt.Errorf("%w: %d fields", ErrForeignSeparator, len(fields))
	}

	var result bytes.Buffer
	for i, p := range perm {
		if i > 0 {
			result.Write(separators[i-1])
		}
		result.Write(fields[p].Text(content))
	}

	span := field.Range{Start: fields[0].Range.Start, End: fields[len(fields)-1].Range.End}
	return &diag.Fix{
		Title: fixTitle(list),
		Edits: []diag.Edit{{Range: span, NewText: result.String()}},
	}, nil
}

// separators returns the bytes between consecutive fields and whether every
// one of them is clean
func (r *JoinedReconstructor) separators(fields []field.Field, content []byte) ([][]byte, bool) {
	out := make([][]byte, 0, len(fields)-1)
	clean := true
	for i := 1; i < len(fields); i++ {
		sep := content[fields[i-1].Range.End:fields[i].Range.Start]
		if !isCleanSeparator(sep) {
			clean = false
		}
		out = append(out, sep)
	}
	return out, clean
}

func isCleanSeparator(sep []byte) bool {
	s := string(sep)
	return strings.Count(s, ",") == 1 && strings.TrimSpace(s) == ","
}
