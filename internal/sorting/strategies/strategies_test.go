package strategies

import (
	"testing"

	"github.com/edarioq/prop-ordering/internal/config"
)

func TestPrefixMatcher(t *testing.T) {
	m := NewPrefixMatcher([]string{"on", "set", "update", "handle", "render"})

	tests := []struct {
		name string
		want bool
	}{
		{"onClick", true},
		{"onNextPage", true},
		{"oncallback", false},
		{"on", false},
		{"setPage", true},
		{"settings", false},
		{"updateUser", true},
		{"handleSubmit", true},
		{"handler", false},
		{"renderItem", true},
		{"renderer", false},
		{"successCallback", true},
		{"clickHandler", true},
		{"variant", false},
		{"id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsCallback(tt.name); got != tt.want {
				t.Errorf("IsCallback(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPatternMatcher(t *testing.T) {
	m, err := NewPatternMatcher([]string{"^on[A-Z]", "^set[A-Z]", "Callback$", "Handler$", "^handle[A-Z]"})
	if err != nil {
		t.Fatalf("NewPatternMatcher: %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"onClick", true},
		{"onclick", false},
		{"setValue", true},
		{"settings", false},
		{"doneCallback", true},
		{"keyHandler", true},
		{"handleChange", true},
		// render is not in the default pattern list
		{"renderItem", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsCallback(tt.name); got != tt.want {
				t.Errorf("IsCallback(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPatternMatcherHasNoImplicitSuffix(t *testing.T) {
	m, err := NewPatternMatcher([]string{"^on[A-Z]"})
	if err != nil {
		t.Fatalf("NewPatternMatcher: %v", err)
	}
	if m.IsCallback("submitHandler") {
		t.Errorf("pattern mode must not add the Handler suffix check")
	}
}

func TestPatternMatcherInvalid(t *testing.T) {
	if _, err := NewPatternMatcher([]string{"("}); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestFactoryCreateMatcher(t *testing.T) {
	f := NewFactory()

	m, err := f.CreateMatcher(config.Options{CallbackPrefixes: []string{"on"}})
	if err != nil {
		t.Fatalf("CreateMatcher: %v", err)
	}
	if _, ok := m.(*PrefixMatcher); !ok {
		t.Errorf("got %T, want *PrefixMatcher", m)
	}

	m, err = f.CreateMatcher(config.Options{CallbackPatterns: []string{"^on"}})
	if err != nil {
		t.Fatalf("CreateMatcher: %v", err)
	}
	if _, ok := m.(*PatternMatcher); !ok {
		t.Errorf("got %T, want *PatternMatcher", m)
	}
}

func TestFactoryEmptyPatternsDisableCallbacks(t *testing.T) {
	m, err := NewFactory().CreateMatcher(config.Options{CallbackPatterns: []string{}})
	if err != nil {
		t.Fatalf("CreateMatcher: %v", err)
	}
	if _, ok := m.(*PatternMatcher); !ok {
		t.Fatalf("got %T, want *PatternMatcher", m)
	}
	for _, name := range []string{"submitHandler", "successCallback", "onClick"} {
		if m.IsCallback(name) {
			t.Errorf("IsCallback(%q) = true, want false", name)
		}
	}
}
