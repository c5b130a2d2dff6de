package comparator

import (
	"github.com/edarioq/prop-ordering/internal/sorting/field"
	"github.com/edarioq/prop-ordering/internal/sorting/interfaces"
)

// Classifier holds the name heuristics shared by every stage. None of the
// predicates resolve types: a name that looks like a callback is treated as
// one whether or not it holds a function.
type Classifier struct {
	reserved  map[string]struct{}
	callbacks interfaces.CallbackMatcher
	shorthand interfaces.ShorthandPredicate
}

// NewClassifier creates a classifier. A nil shorthand predicate classifies
// nothing as shorthand.
func NewClassifier(reserved []string, callbacks interfaces.CallbackMatcher, shorthand interfaces.ShorthandPredicate) *Classifier {
	set := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		set[name] = struct{}{}
	}
	return &Classifier{
		reserved:  set,
		callbacks: callbacks,
		shorthand: shorthand,
	}
}

// IsReserved reports whether name is one of the reserved names
func (c *Classifier) IsReserved(name string) bool {
	_, ok := c.reserved[name]
	return ok
}

// IsCallback reports whether name looks like a callback
func (c *Classifier) IsCallback(name string) bool {
	if c.callbacks == nil {
		return false
	}
	return c.callbacks.IsCallback(name)
}

// IsShorthand reports whether f belongs to the shorthand bucket
func (c *Classifier) IsShorthand(f field.Field) bool {
	if c.shorthand == nil {
		return false
	}
	return c.shorthand(f)
}

// ShorthandByValue classifies attributes without an assigned value
func ShorthandByValue(f field.Field) bool {
	return !f.HasValue
}

// ShorthandByDefault classifies defaulted or optional entries
func ShorthandByDefault(f field.Field) bool {
	return f.HasDefaultOrOptional
}
