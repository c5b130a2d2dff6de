package strategies

import (
	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/sorting/interfaces"
)

// Factory creates callback matchers based on configuration
type Factory struct{}

// CreateMatcher creates the matcher for the active callback mode. A non-nil
// pattern list selects pattern mode even when empty, so `callbackPatterns: []`
// turns callback detection off.
func (f *Factory) CreateMatcher(opts config.Options) (interfaces.CallbackMatcher, error) {
	if opts.CallbackPatterns != nil {
		return NewPatternMatcher(opts.CallbackPatterns)
	}

	return NewPrefixMatcher(opts.CallbackPrefixes), nil
}

// NewFactory creates a new matcher factory
func NewFactory() *Factory {
	return &Factory{}
}
