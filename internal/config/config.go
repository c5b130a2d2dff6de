// Package config defines the rule options, their defaults and validation.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"

	"golang.org/x/text/language"
)

// Rule names
const (
	RuleComponentProps = "sort-component-props"
	RuleJSXProps       = "sort-jsx-props"
	RuleTypeProperties = "sort-type-properties"
)

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid configuration")

// Policy places a bucket of fields first, last, or leaves it unordered
type Policy string

const (
	PolicyFirst  Policy = "first"
	PolicyLast   Policy = "last"
	PolicyIgnore Policy = "ignore"
)

func (p Policy) valid() bool {
	switch p {
	case PolicyFirst, PolicyLast, PolicyIgnore:
		return true
	}
	return false
}

// Config is the top-level configuration file
type Config struct {
	Rules      map[string]RuleOptions `yaml:"rules" toml:"rules"`
	Extensions []string               `yaml:"extensions" toml:"extensions"`
	Exclude    []string               `yaml:"exclude" toml:"exclude"`
}

// RuleOptions is the per-rule option schema as written by users. Unset
// fields fall back to the rule defaults in Resolve.
type RuleOptions struct {
	Enabled              *bool    `yaml:"enabled" toml:"enabled"`
	CallbacksLast        *bool    `yaml:"callbacksLast" toml:"callbacksLast"`
	Shorthand            Policy   `yaml:"shorthand" toml:"shorthand"`
	ShorthandFirst       *bool    `yaml:"shorthandFirst" toml:"shorthandFirst"`
	NoSortAlphabetically *bool    `yaml:"noSortAlphabetically" toml:"noSortAlphabetically"`
	ReservedFirst        *bool    `yaml:"reservedFirst" toml:"reservedFirst"`
	ReservedPropsNames   []string `yaml:"reservedPropsNames" toml:"reservedPropsNames"`
	CallbackPrefixes     []string `yaml:"callbackPrefixes" toml:"callbackPrefixes"`
	CallbackPatterns     []string `yaml:"callbackPatterns" toml:"callbackPatterns"`
	IgnoreCase           *bool    `yaml:"ignoreCase" toml:"ignoreCase"`
	Locale               string   `yaml:"locale" toml:"locale"`
	Multiline            Policy   `yaml:"multiline" toml:"multiline"`
	RequireComponent     *bool    `yaml:"requireComponent" toml:"requireComponent"`
}

// Options are the resolved, read-only options of one rule
type Options struct {
	Enabled            bool
	CallbacksLast      bool
	Shorthand          Policy
	SortAlphabetically bool
	ReservedFirst      bool
	ReservedNames      []string
	// Exactly one of CallbackPrefixes and CallbackPatterns is non-nil
	CallbackPrefixes []string
	CallbackPatterns []string
	IgnoreCase       bool
	Locale           string
	Multiline        Policy
	RequireComponent bool
}

var (
	defaultReservedNames    = []string{"id", "key", "ref", "name", "type"}
	defaultJSXReservedNames = []string{"id", "key", "ref", "name", "type", "className", "style"}
	defaultCallbackPrefixes = []string{"on", "set", "update", "handle", "render"}
	defaultCallbackPatterns = []string{"^on[A-Z]", "^set[A-Z]", "Callback$", "Handler$", "^handle[A-Z]"}
	defaultExtensions       = []string{".ts", ".tsx"}
	defaultExclude          = []string{"node_modules"}
)

// RuleNames returns the names of all known rules in a stable order
func RuleNames() []string {
	return []string{RuleComponentProps, RuleJSXProps, RuleTypeProperties}
}

// DefaultConfig returns a Config with no rule overrides
func DefaultConfig() *Config {
	return &Config{
		Rules:      map[string]RuleOptions{},
		Extensions: slices.Clone(defaultExtensions),
		Exclude:    slices.Clone(defaultExclude),
	}
}

// DefaultOptions returns the built-in options of a rule
func DefaultOptions(rule string) (Options, error) {
	opts := Options{
		Enabled:            true,
		CallbacksLast:      true,
		SortAlphabetically: true,
		ReservedFirst:      true,
		Multiline:          PolicyIgnore,
	}

	switch rule {
	case RuleComponentProps:
		opts.Shorthand = PolicyLast
		opts.ReservedNames = slices.Clone(defaultReservedNames)
		opts.CallbackPrefixes = slices.Clone(defaultCallbackPrefixes)
	case RuleJSXProps:
		opts.Shorthand = PolicyFirst
		opts.ReservedNames = slices.Clone(defaultJSXReservedNames)
		opts.CallbackPatterns = slices.Clone(defaultCallbackPatterns)
	case RuleTypeProperties:
		opts.Shorthand = PolicyLast
		opts.ReservedNames = slices.Clone(defaultReservedNames)
		opts.CallbackPrefixes = slices.Clone(defaultCallbackPrefixes)
	default:
		return Options{}, fmt.Errorf("%w: unknown rule %q", ErrInvalidConfig, rule)
	}

	return opts, nil
}

// Validate checks rule names and every rule's options
func (c *Config) Validate() error {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := c.Resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// Resolve merges the user options of a rule over its defaults and validates
// the result
func (c *Config) Resolve(rule string) (Options, error) {
	opts, err := DefaultOptions(rule)
	if err != nil {
		return Options{}, err
	}

	ro, ok := c.Rules[rule]
	if !ok {
		return opts, nil
	}

	if err := ro.validate(rule); err != nil {
		return Options{}, err
	}

	setBool(&opts.Enabled, ro.Enabled)
	setBool(&opts.CallbacksLast, ro.CallbacksLast)
	setBool(&opts.ReservedFirst, ro.ReservedFirst)
	setBool(&opts.IgnoreCase, ro.IgnoreCase)
	setBool(&opts.RequireComponent, ro.RequireComponent)
	if ro.NoSortAlphabetically != nil {
		opts.SortAlphabetically = !*ro.NoSortAlphabetically
	}

	switch {
	case ro.Shorthand != "":
		opts.Shorthand = ro.Shorthand
	case ro.ShorthandFirst != nil && *ro.ShorthandFirst:
		opts.Shorthand = PolicyFirst
	case ro.ShorthandFirst != nil:
		opts.Shorthand = PolicyIgnore
	}

	if ro.ReservedPropsNames != nil {
		opts.ReservedNames = slices.Clone(ro.ReservedPropsNames)
	}

	// Choosing one callback mode clears the default of the other
	if ro.CallbackPrefixes != nil {
		opts.CallbackPrefixes = slices.Clone(ro.CallbackPrefixes)
		opts.CallbackPatterns = nil
	}
	if ro.CallbackPatterns != nil {
		opts.CallbackPatterns = slices.Clone(ro.CallbackPatterns)
		opts.CallbackPrefixes = nil
	}

	if ro.Locale != "" {
		opts.Locale = ro.Locale
	}
	if ro.Multiline != "" {
		opts.Multiline = ro.Multiline
	}

	return opts, nil
}

func (ro RuleOptions) validate(rule string) error {
	if ro.CallbackPrefixes != nil && ro.CallbackPatterns != nil {
		return fmt.Errorf("%w: %s: cannot use both 'callbackPrefixes' and 'callbackPatterns' options together", ErrInvalidConfig, rule)
	}
	if ro.Shorthand != "" && !ro.Shorthand.valid() {
		return fmt.Errorf("%w: %s: shorthand must be one of first, last, ignore; got %q", ErrInvalidConfig, rule, ro.Shorthand)
	}
	if ro.Shorthand != "" && ro.ShorthandFirst != nil {
		return fmt.Errorf("%w: %s: cannot use both 'shorthand' and 'shorthandFirst' options together", ErrInvalidConfig, rule)
	}
	for _, p := range ro.CallbackPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: %s: callback pattern %q: %v", ErrInvalidConfig, rule, p, err)
		}
	}

	if rule != RuleJSXProps {
		if ro.IgnoreCase != nil || ro.Locale != "" || ro.Multiline != "" {
			return fmt.Errorf("%w: %s: 'ignoreCase', 'locale' and 'multiline' are only supported by %s", ErrInvalidConfig, rule, RuleJSXProps)
		}
	}
	if rule != RuleComponentProps && ro.RequireComponent != nil {
		return fmt.Errorf("%w: %s: 'requireComponent' is only supported by %s", ErrInvalidConfig, rule, RuleComponentProps)
	}

	if ro.Multiline != "" && !ro.Multiline.valid() {
		return fmt.Errorf("%w: %s: multiline must be one of first, last, ignore; got %q", ErrInvalidConfig, rule, ro.Multiline)
	}
	if ro.Locale != "" {
		if _, err := language.Parse(ro.Locale); err != nil {
			return fmt.Errorf("%w: %s: locale %q: %v", ErrInvalidConfig, rule, ro.Locale, err)
		}
	}

	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
