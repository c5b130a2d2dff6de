// Package rules binds extractors, comparators and reconstructors into the
// three ordering rules and dispatches tree nodes to them.
package rules

import (
	"fmt"
	"log/slog"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/diag"
	"github.com/edarioq/prop-ordering/internal/reconstruction"
	"github.com/edarioq/prop-ordering/internal/sorting/common"
	"github.com/edarioq/prop-ordering/internal/sorting/comparator"
	"github.com/edarioq/prop-ordering/internal/sorting/field"
	"github.com/edarioq/prop-ordering/internal/sorting/interfaces"
	"github.com/edarioq/prop-ordering/internal/sorting/strategies"
	"github.com/edarioq/prop-ordering/internal/sorting/types/attributes"
	"github.com/edarioq/prop-ordering/internal/sorting/types/members"
	"github.com/edarioq/prop-ordering/internal/sorting/types/params"
)

// Rule messages
const (
	MessageComponentProps = "React component props should be sorted according to the defined order."
	MessageJSXProps       = "JSX props should be sorted according to the defined order."
	MessageInterfaceProps = "Interface properties should be sorted according to the defined order."
	MessageTypeProps      = "Type properties should be sorted according to the defined order."
)

// Rule checks one kind of field list. A Rule holds a collator and is not
// safe for concurrent use.
type Rule struct {
	name          string
	extractor     interfaces.Extractor
	comparator    *comparator.Comparator
	reconstructor reconstruction.Reconstructor
	message       func(list field.List) string
}

type ruleParts struct {
	extractor interfaces.Extractor
	stages    []comparator.Stage
	shorthand interfaces.ShorthandPredicate
	message   func(list field.List) string
}

// New builds the named rule from resolved options
func New(name string, opts config.Options) (*Rule, error) {
	parts, err := partsFor(name, opts)
	if err != nil {
		return nil, err
	}

	matcher, err := strategies.NewFactory().CreateMatcher(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	classifier := comparator.NewClassifier(opts.ReservedNames, matcher, parts.shorthand)
	cmp, err := comparator.New(opts, classifier, parts.stages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	recon, err := reconstruction.NewFactory().CreateReconstructor(parts.extractor.Shape())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	slog.Debug("rule ready", "rule", name, "callbacks", matcher.GetName(), "stages", cmp.Stages())

	return &Rule{
		name:          name,
		extractor:     parts.extractor,
		comparator:    cmp,
		reconstructor: recon,
		message:       parts.message,
	}, nil
}

func partsFor(name string, opts config.Options) (ruleParts, error) {
	switch name {
	case config.RuleComponentProps:
		return ruleParts{
			extractor: params.NewExtractor(opts.RequireComponent),
			stages:    comparator.DeclarationStages,
			shorthand: comparator.ShorthandByDefault,
			message:   constMessage(MessageComponentProps),
		}, nil
	case config.RuleJSXProps:
		return ruleParts{
			extractor: attributes.NewExtractor(),
			stages:    comparator.AttributeStages,
			shorthand: comparator.ShorthandByValue,
			message:   constMessage(MessageJSXProps),
		}, nil
	case config.RuleTypeProperties:
		return ruleParts{
			extractor: members.NewExtractor(),
			stages:    comparator.DeclarationStages,
			shorthand: comparator.ShorthandByDefault,
			message: func(list field.List) string {
				if members.IsInterface(list.Node) {
					return MessageInterfaceProps
				}
				return MessageTypeProps
			},
		}, nil
	}
	return ruleParts{}, fmt.Errorf("%w: unknown rule %q", config.ErrInvalidConfig, name)
}

func constMessage(msg string) func(field.List) string {
	return func(field.List) string { return msg }
}

// Name returns the rule name
func (r *Rule) Name() string {
	return r.name
}

// NodeTypes returns the node kinds the rule inspects
func (r *Rule) NodeTypes() []string {
	return r.extractor.NodeTypes()
}

// Check inspects one node and returns at most one violation. The violation
// carries a fix unless the reconstructor rejected the list.
func (r *Rule) Check(node *sitter.Node, content []byte) (*diag.Violation, bool) {
	list, ok := r.extractor.Extract(node, content)
	if !ok {
		return nil, false
	}

	perm, unordered := r.comparator.Check(list.Fields)
	if !unordered {
		return nil, false
	}

	v := &diag.Violation{
		Rule:     r.name,
		Severity: diag.SevError,
		Message:  r.message(list),
		Range:    common.NodeRange(node),
		Start:    position(node.StartPoint()),
		End:      position(node.EndPoint()),
	}

	fix, err := r.reconstructor.Reconstruct(list, perm, content)
	if err != nil {
		slog.Debug("no fix for violation", "rule", r.name, "line", v.Start.Line, "err", err)
		return v, true
	}
	v.Fix = fix
	return v, true
}

func position(p sitter.Point) diag.Position {
	return diag.Position{
		Line:   safecast.MustConv[int](p.Row) + 1,
		Column: safecast.MustConv[int](p.Column) + 1,
	}
}
