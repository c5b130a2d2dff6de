// Package processor parses source files, runs the ordering rules over them
// and applies fixes.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/diag"
	"github.com/edarioq/prop-ordering/internal/rules"
)

// MaxPasses bounds the fix loop. Each pass re-parses the content so fixes
// deferred because they overlapped get another chance.
const MaxPasses = 10

// ErrNotConverged is returned when fixable violations remain after MaxPasses
var ErrNotConverged = errors.New("fixes did not converge")

// Config holds the configuration for processing files
type Config struct {
	Check      bool
	Write      bool
	Recursive  bool
	Extensions []string
	Paths      []string
	Workers    int
	Rules      *config.Config
}

// ProcessResult contains the result of processing a file
type ProcessResult struct {
	Path       string
	Changed    bool
	Violations []diag.Violation
	// Remaining are the violations left after fixing, equal to Violations
	// when nothing was fixable
	Remaining []diag.Violation
	// Fixed is the number of fixes applied across all passes
	Fixed  int
	Passes int
}

// FixResult is the outcome of the fix loop
type FixResult struct {
	Content []byte
	Applied int
	Passes  int
	// Remaining are the violations left in Content
	Remaining []diag.Violation
}

// Processor lints and fixes content. It owns rule state and must not be
// shared between goroutines.
type Processor struct {
	registry *rules.Registry
}

// NewProcessor creates a processor for the enabled rules of cfg
func NewProcessor(cfg *config.Config) (*Processor, error) {
	reg, err := rules.NewRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return &Processor{registry: reg}, nil
}

// Lint returns the violations found in content, ordered by position
func (p *Processor) Lint(ctx context.Context, lang Language, content []byte) ([]diag.Violation, error) {
	tree, err := Parse(ctx, lang, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		slog.Debug("syntax errors in input, linting what parsed", "language", lang)
	}
	if fileDisabled(root, content) {
		return nil, nil
	}

	bag := diag.NewBag()
	Walk(root, content, p.registry, bag)
	return bag.Items(), nil
}

// Fix applies fixes until no fixable violation is left or MaxPasses is hit
func (p *Processor) Fix(ctx context.Context, lang Language, content []byte) (FixResult, error) {
	result := FixResult{Content: content}

	for result.Passes < MaxPasses {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		violations, err := p.Lint(ctx, lang, result.Content)
		if err != nil {
			return result, err
		}
		result.Remaining = violations
		if !anyFixable(violations) {
			return result, nil
		}

		applied, err := diag.Apply(result.Content, violations)
		if err != nil {
			return result, err
		}
		result.Passes++
		if applied.Applied == 0 {
			return result, nil
		}

		result.Content = applied.Content
		result.Applied += applied.Applied
		slog.Debug("fix pass", "pass", result.Passes, "applied", applied.Applied, "deferred", applied.Deferred)
	}

	violations, err := p.Lint(ctx, lang, result.Content)
	if err != nil {
		return result, err
	}
	result.Remaining = violations
	if anyFixable(violations) {
		return result, fmt.Errorf("%w after %d passes", ErrNotConverged, MaxPasses)
	}
	return result, nil
}

// ProcessFile lints one file and, when cfg.Write is set, writes the fixed
// content back with the file's original permissions
func (p *Processor) ProcessFile(ctx context.Context, filePath string, cfg Config) (ProcessResult, error) {
	result := ProcessResult{Path: filePath}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return result, fmt.Errorf("reading file: %w", err)
	}
	lang := LanguageFor(filePath)

	violations, err := p.Lint(ctx, lang, content)
	if err != nil {
		return result, fmt.Errorf("%s: %w", filePath, err)
	}
	result.Violations = violations
	result.Remaining = violations
	if !anyFixable(violations) {
		return result, nil
	}

	fixed, err := p.Fix(ctx, lang, content)
	if err != nil {
		return result, fmt.Errorf("%s: %w", filePath, err)
	}
	result.Remaining = fixed.Remaining
	result.Fixed = fixed.Applied
	result.Passes = fixed.Passes
	result.Changed = string(fixed.Content) != string(content)

	if result.Changed && cfg.Write {
		info, err := os.Stat(filePath)
		if err != nil {
			return result, fmt.Errorf("stat file: %w", err)
		}
		if err := os.WriteFile(filePath, fixed.Content, info.Mode().Perm()); err != nil {
			return result, fmt.Errorf("writing file: %w", err)
		}
	}

	return result, nil
}

func anyFixable(vs []diag.Violation) bool {
	for _, v := range vs {
		if v.Fixable() {
			return true
		}
	}
	return false
}
