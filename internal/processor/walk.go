package processor

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/edarioq/prop-ordering/internal/diag"
	"github.com/edarioq/prop-ordering/internal/rules"
)

// Walk visits the tree depth first, handing every node to the registry.
// Subtrees preceded by an ignore comment are skipped.
func Walk(root *sitter.Node, content []byte, reg *rules.Registry, reporter diag.Reporter) int {
	found := 0

	var traverse func(*sitter.Node)
	traverse = func(n *sitter.Node) {
		if ignored(n, content) {
			return
		}
		found += reg.Visit(n, content, reporter)

		for i := 0; i < int(n.ChildCount()); i++ {
			traverse(n.Child(i))
		}
	}

	traverse(root)
	return found
}
