package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language selects the grammar used to parse a file
type Language uint8

const (
	LangTSX Language = iota
	LangTypeScript
)

func (l Language) String() string {
	switch l {
	case LangTSX:
		return "tsx"
	case LangTypeScript:
		return "typescript"
	}
	return "unknown"
}

// Parser pools to avoid recreating parsers
var parserPools = map[Language]*sync.Pool{
	LangTSX:        newParserPool(tsx.GetLanguage()),
	LangTypeScript: newParserPool(typescript.GetLanguage()),
}

func newParserPool(lang *sitter.Language) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			parser := sitter.NewParser()
			parser.SetLanguage(lang)
			return parser
		},
	}
}

// LanguageFor picks the grammar by file extension. Plain .ts files use the
// typescript grammar so `<T>value` assertions parse; everything else may
// contain JSX.
func LanguageFor(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return LangTypeScript
	}
	return LangTSX
}

// Parse parses content with a pooled parser for lang
func Parse(ctx context.Context, lang Language, content []byte) (*sitter.Tree, error) {
	pool, ok := parserPools[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language %s", lang)
	}

	parser := pool.Get().(*sitter.Parser)
	defer pool.Put(parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", lang, err)
	}
	return tree, nil
}
