package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/diag"
)

// Registry maps node kinds to the enabled rules that inspect them
type Registry struct {
	rules  []*Rule
	byType map[string][]*Rule
}

// NewRegistry builds every enabled rule of cfg. Registries are cheap; build
// one per goroutine.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	reg := &Registry{byType: map[string][]*Rule{}}
	for _, name := range config.RuleNames() {
		opts, err := cfg.Resolve(name)
		if err != nil {
			return nil, err
		}
		if !opts.Enabled {
			continue
		}
		rule, err := New(name, opts)
		if err != nil {
			return nil, fmt.Errorf("building rule: %w", err)
		}
		reg.add(rule)
	}
	return reg, nil
}

func (r *Registry) add(rule *Rule) {
	r.rules = append(r.rules, rule)
	for _, typ := range rule.NodeTypes() {
		r.byType[typ] = append(r.byType[typ], rule)
	}
}

// Rules returns the enabled rules
func (r *Registry) Rules() []*Rule {
	return r.rules
}

// Visit runs every rule registered for the node's kind
func (r *Registry) Visit(node *sitter.Node, content []byte, reporter diag.Reporter) int {
	found := 0
	for _, rule := range r.byType[node.Type()] {
		if v, ok := rule.Check(node, content); ok {
			reporter.Report(*v)
			found++
		}
	}
	return found
}

// Handles reports whether any rule inspects the given node kind
func (r *Registry) Handles(nodeType string) bool {
	return len(r.byType[nodeType]) > 0
}
