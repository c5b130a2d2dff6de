package comparator

import (
	"sort"

	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// IsOrdered scans adjacent pairs and reports whether no pair is inverted
func (c *Comparator) IsOrdered(fields []field.Field) bool {
	for i := 1; i < len(fields); i++ {
		if c.Compare(fields[i-1], fields[i]) > 0 {
			return false
		}
	}
	return true
}

// Permutation returns perm such that fields[perm[0]], fields[perm[1]], ...
// is the stably sorted order. fields itself is never reordered.
func (c *Comparator) Permutation(fields []field.Field) []int {
	perm := make([]int, len(fields))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return c.Compare(fields[perm[i]], fields[perm[j]]) < 0
	})
	return perm
}

// Moved reports whether perm differs from the identity. Positions are
// compared by index, never by name, so equal-named entries are distinct.
func Moved(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return true
		}
	}
	return false
}

// Check returns the sorting permutation and true when fields need
// reordering. The sort only runs once the linear scan finds an inversion.
func (c *Comparator) Check(fields []field.Field) ([]int, bool) {
	if len(fields) <= 1 || c.IsOrdered(fields) {
		return nil, false
	}

	perm := c.Permutation(fields)
	if !Moved(perm) {
		return nil, false
	}
	return perm, true
}

// Apply returns the fields in permutation order
func Apply(fields []field.Field, perm []int) []field.Field {
	out := make([]field.Field, len(perm))
	for i, p := range perm {
		out[i] = fields[p]
	}
	return out
}
