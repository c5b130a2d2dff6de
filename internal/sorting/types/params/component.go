package params

import (
	"github.com/edarioq/prop-ordering/internal/sorting/common"

	sitter "github.com/smacker/go-tree-sitter"
)

// IsComponent guesses whether fn declares a component: its declared or bound
// name is capitalized, or its body returns JSX. This is a naming heuristic,
// not a type check.
func IsComponent(fn *sitter.Node, content []byte) bool {
	return common.IsCapitalized(declaredName(fn, content)) || returnsJSX(fn)
}

func declaredName(fn *sitter.Node, content []byte) string {
	if name := fn.ChildByFieldName("name"); name != nil {
		return common.NodeText(name, content)
	}

	parent := fn.Parent()
	if parent != nil && parent.Type() == "variable_declarator" {
		if id := parent.ChildByFieldName("name"); id != nil && id.Type() == "identifier" {
			return common.NodeText(id, content)
		}
	}
	return ""
}

func returnsJSX(fn *sitter.Node) bool {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return false
	}

	if body.Type() != "statement_block" {
		// Arrow function with an expression body
		return common.IsJSX(common.Unparenthesize(body))
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() != "return_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		if common.IsJSX(common.Unparenthesize(stmt.NamedChild(0))) {
			return true
		}
	}
	return false
}
