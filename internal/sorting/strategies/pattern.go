package strategies

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternMatcher treats a name as a callback when any configured regular
// expression matches it. No suffix check is implied; the patterns are
// expected to encode it.
type PatternMatcher struct {
	patterns []*regexp.Regexp
}

// NewPatternMatcher compiles the patterns in order
func NewPatternMatcher(patterns []string) (*PatternMatcher, error) {
	m := &PatternMatcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid callback pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

func (m *PatternMatcher) IsCallback(name string) bool {
	for _, re := range m.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func (m *PatternMatcher) GetName() string {
	parts := make([]string, len(m.patterns))
	for i, re := range m.patterns {
		parts[i] = re.String()
	}
	return "callback-patterns[" + strings.Join(parts, ",") + "]"
}
