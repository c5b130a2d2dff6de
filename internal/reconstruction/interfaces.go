// Package reconstruction turns a sort permutation into text edits.
package reconstruction

import (
	"fmt"

	"github.com/edarioq/prop-ordering/internal/diag"
	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// Reconstructor builds the fix that rewrites a field list into sorted order
type Reconstructor interface {
	// Reconstruct returns a fix placing list.Fields[perm[i]] at position i.
	// Only the source spans of the fields are rewritten; everything else,
	// including entries the extractor skipped, is left untouched.
	Reconstruct(list field.List, perm []int, content []byte) (*diag.Fix, error)
}

func checkPermutation(list field.List, perm []int, content []byte) error {
	if len(perm) != len(list.Fields) {
		return fmt.Errorf("permutation has %d entries for %d fields", len(perm), len(list.Fields))
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return fmt.Errorf("invalid permutation %v", perm)
		}
		seen[p] = true
	}
	for _, f := range list.Fields {
		if f.Range.Start < 0 || f.Range.End > len(content) || f.Range.Start > f.Range.End {
			return fmt.Errorf("field %q range [%d,%d) out of bounds", f.Name, f.Range.Start, f.Range.End)
		}
	}
	return nil
}

func fixTitle(list field.List) string {
	return fmt.Sprintf("Sort %d %s", len(list.Fields), list.Shape)
}
