package comparator

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// Stage is one tie-break step of the comparator
type Stage uint8

const (
	StageRest Stage = iota
	StageMultiline
	StageReserved
	StageShorthand
	StageCallbacks
	StageAlphabetical
)

func (s Stage) String() string {
	switch s {
	case StageRest:
		return "rest"
	case StageMultiline:
		return "multiline"
	case StageReserved:
		return "reserved"
	case StageShorthand:
		return "shorthand"
	case StageCallbacks:
		return "callbacks"
	case StageAlphabetical:
		return "alphabetical"
	}
	return "unknown"
}

// Stage orders used by the rules
var (
	// AttributeStages evaluates the shorthand bucket before callbacks
	AttributeStages = []Stage{StageRest, StageMultiline, StageReserved, StageShorthand, StageCallbacks, StageAlphabetical}
	// DeclarationStages separates callbacks before looking at defaults or
	// optional markers
	DeclarationStages = []Stage{StageRest, StageReserved, StageCallbacks, StageShorthand, StageAlphabetical}
)

// Comparator is a total preorder over fields built from enabled stages.
// It owns a collator and must not be shared between goroutines.
type Comparator struct {
	classifier *Classifier
	stages     []Stage

	multiline  config.Policy
	shorthand  config.Policy
	ignoreCase bool
	collator   *collate.Collator
}

// New builds a comparator from resolved options. Stages disabled by opts are
// dropped from the chain rather than evaluated as ties.
func New(opts config.Options, classifier *Classifier, order []Stage) (*Comparator, error) {
	c := &Comparator{
		classifier: classifier,
		multiline:  opts.Multiline,
		shorthand:  opts.Shorthand,
		ignoreCase: opts.IgnoreCase,
	}

	for _, s := range order {
		switch s {
		case StageMultiline:
			if opts.Multiline == "" || opts.Multiline == config.PolicyIgnore {
				continue
			}
		case StageReserved:
			if !opts.ReservedFirst {
				continue
			}
		case StageShorthand:
			if opts.Shorthand == "" || opts.Shorthand == config.PolicyIgnore {
				continue
			}
		case StageCallbacks:
			if !opts.CallbacksLast {
				continue
			}
		case StageAlphabetical:
			if !opts.SortAlphabetically {
				continue
			}
			tag := language.Und
			if opts.Locale != "" {
				parsed, err := language.Parse(opts.Locale)
				if err != nil {
					return nil, err
				}
				tag = parsed
			}
			c.collator = collate.New(tag)
		}
		c.stages = append(c.stages, s)
	}

	return c, nil
}

// Stages returns the enabled stages in evaluation order
func (c *Comparator) Stages() []Stage {
	return c.stages
}

// Compare returns -1 when a sorts before b, +1 when after, 0 on a tie
func (c *Comparator) Compare(a, b field.Field) int {
	for _, s := range c.stages {
		if s == StageRest {
			if r := compareRest(a, b); r != 0 {
				return r
			}
			continue
		}

		// Entries without a static name never take part in a decision
		if !a.Named || !b.Named {
			return 0
		}

		var r int
		switch s {
		case StageMultiline:
			r = placeBucket(a.Multiline, b.Multiline, c.multiline == config.PolicyFirst)
		case StageReserved:
			r = placeBucket(c.classifier.IsReserved(a.Name), c.classifier.IsReserved(b.Name), true)
		case StageShorthand:
			r = placeBucket(c.classifier.IsShorthand(a), c.classifier.IsShorthand(b), c.shorthand == config.PolicyFirst)
		case StageCallbacks:
			r = placeBucket(c.classifier.IsCallback(a.Name), c.classifier.IsCallback(b.Name), false)
		case StageAlphabetical:
			r = c.compareNames(a.Name, b.Name)
		}
		if r != 0 {
			return r
		}
	}
	return 0
}

func (c *Comparator) compareNames(a, b string) int {
	if c.ignoreCase {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	return c.collator.CompareString(a, b)
}

func compareRest(a, b field.Field) int {
	aRest := a.Kind == field.KindRest
	bRest := b.Kind == field.KindRest
	switch {
	case aRest && !bRest:
		return 1
	case !aRest && bRest:
		return -1
	}
	return 0
}

// placeBucket orders members of a bucket before (first) or after non-members.
// Both sides are checked so equal classifications fall through.
func placeBucket(aIn, bIn, first bool) int {
	switch {
	case aIn && !bIn:
		if first {
			return -1
		}
		return 1
	case !aIn && bIn:
		if first {
			return 1
		}
		return -1
	}
	return 0
}
