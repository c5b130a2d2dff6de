package diag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOverlap is returned when the edits of a single fix overlap each other
var ErrOverlap = errors.New("overlapping edits")

// ApplyResult describes what Apply did
type ApplyResult struct {
	Content []byte
	Applied int
	// Deferred counts fixes skipped because they overlap a fix applied in
	// the same pass. Running the rules again on Content picks them up.
	Deferred int
}

// Validate checks that the edits of f are in bounds and do not overlap
func (f Fix) Validate(size int) error {
	edits := sortedEdits(f.Edits)
	for i, e := range edits {
		if e.Range.Start < 0 || e.Range.End > size || e.Range.Start > e.Range.End {
			return fmt.Errorf("edit [%d,%d) out of bounds for %d bytes", e.Range.Start, e.Range.End, size)
		}
		if i > 0 && edits[i-1].Range.End > e.Range.Start {
			return fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlap,
				edits[i-1].Range.Start, edits[i-1].Range.End, e.Range.Start, e.Range.End)
		}
	}
	return nil
}

// Apply applies the fixes of violations to content. A fix is applied whole
// or not at all; fixes overlapping an earlier accepted fix are deferred.
// Edits are spliced from the end of the content backwards so offsets stay
// valid.
func Apply(content []byte, violations []Violation) (ApplyResult, error) {
	fixes := make([]Fix, 0, len(violations))
	for _, v := range violations {
		if v.Fixable() {
			fixes = append(fixes, *v.Fix)
		}
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		return firstStart(fixes[i]) < firstStart(fixes[j])
	})

	result := ApplyResult{}
	var accepted []Edit

	for _, f := range fixes {
		if err := f.Validate(len(content)); err != nil {
			return ApplyResult{}, fmt.Errorf("fix %q: %w", f.Title, err)
		}
		if overlapsAny(f.Edits, accepted) {
			result.Deferred++
			continue
		}
		accepted = append(accepted, f.Edits...)
		result.Applied++
	}

	// Descending start order
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Range.Start > accepted[j].Range.Start
	})

	out := make([]byte, len(content))
	copy(out, content)
	for _, e := range accepted {
		before := out[:e.Range.Start]
		after := out[e.Range.End:]
		spliced := make([]byte, 0, len(before)+len(e.NewText)+len(after))
		spliced = append(spliced, before...)
		spliced = append(spliced, e.NewText...)
		spliced = append(spliced, after...)
		out = spliced
	}

	result.Content = out
	return result, nil
}

func sortedEdits(edits []Edit) []Edit {
	out := make([]Edit, len(edits))
	copy(out, edits)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start < out[j].Range.Start
	})
	return out
}

func firstStart(f Fix) int {
	start := -1
	for _, e := range f.Edits {
		if start < 0 || e.Range.Start < start {
			start = e.Range.Start
		}
	}
	return start
}

func overlapsAny(edits, accepted []Edit) bool {
	for _, e := range edits {
		for _, a := range accepted {
			if e.Range.Overlaps(a.Range) {
				return true
			}
		}
	}
	return false
}
