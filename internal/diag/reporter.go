package diag

import (
	"sort"
	"sync"
)

// Reporter receives violations from rules
type Reporter interface {
	Report(v Violation)
}

// Bag collects violations. It is safe for concurrent use.
type Bag struct {
	mu    sync.Mutex
	items []Violation
}

// NewBag creates an empty bag
func NewBag() *Bag {
	return &Bag{}
}

// Report appends a violation
func (b *Bag) Report(v Violation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, v)
}

// Len returns the number of collected violations
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns the violations ordered by position, then rule name
func (b *Bag) Items() []Violation {
	b.mu.Lock()
	out := make([]Violation, len(b.items))
	copy(out, b.items)
	b.mu.Unlock()

	Sort(out)
	return out
}

// Sort orders violations by start offset, end offset and rule name
func Sort(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Range.Start != vs[j].Range.Start {
			return vs[i].Range.Start < vs[j].Range.Start
		}
		if vs[i].Range.End != vs[j].Range.End {
			return vs[i].Range.End < vs[j].Range.End
		}
		return vs[i].Rule < vs[j].Rule
	})
}

// NopReporter drops every violation
type NopReporter struct{}

func (NopReporter) Report(Violation) {}
