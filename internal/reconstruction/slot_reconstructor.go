package reconstruction

import (
	"github.com/edarioq/prop-ordering/internal/diag"
	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// SlotReconstructor swaps field texts between their original positions.
// Whatever sits between fields (spreads, methods, comments, separators) stays
// where it is.
type SlotReconstructor struct{}

// NewSlotReconstructor creates a new slot reconstructor
func NewSlotReconstructor() *SlotReconstructor {
	return &SlotReconstructor{}
}

// Reconstruct emits one edit per position whose occupant changes
func (r *SlotReconstructor) Reconstruct(list field.List, perm []int, content []byte) (*diag.Fix, error) {
	if err := checkPermutation(list, perm, content); err != nil {
		return nil, err
	}

	fix := &diag.Fix{Title: fixTitle(list)}
	for i, p := range perm {
		if p == i {
			continue
		}
		fix.Edits = append(fix.Edits, diag.Edit{
			Range:   list.Fields[i].Range,
			NewText: string(list.Fields[p].Text(content)),
		})
	}
	return fix, nil
}
