package strategies

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// callbackSuffixes are always checked in prefix mode
var callbackSuffixes = []string{"Callback", "Handler"}

// PrefixMatcher treats a name as a callback when it starts with one of the
// configured prefixes followed by an upper-case letter (onClick, setPage but
// not settings), or ends with Callback/Handler.
type PrefixMatcher struct {
	Prefixes []string
}

// NewPrefixMatcher creates a prefix matcher. Prefixes are checked in order
// and the first match wins.
func NewPrefixMatcher(prefixes []string) *PrefixMatcher {
	return &PrefixMatcher{Prefixes: append([]string(nil), prefixes...)}
}

func (m *PrefixMatcher) IsCallback(name string) bool {
	for _, prefix := range m.Prefixes {
		if prefix == "" || len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(name[len(prefix):])
		if unicode.IsUpper(next) {
			return true
		}
	}

	for _, suffix := range callbackSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

func (m *PrefixMatcher) GetName() string {
	return "callback-prefixes[" + strings.Join(m.Prefixes, ",") + "]"
}
