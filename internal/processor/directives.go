package processor

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/edarioq/prop-ordering/internal/sorting/common"
)

var (
	// disableFileRegex turns the linter off for a whole file
	disableFileRegex = regexp.MustCompile(`(?s)(//|/\*).*?\bprop-ordering-disable(\s|\*/|$)`)
	// ignoreRegex skips the statement or member that follows the comment
	ignoreRegex = regexp.MustCompile(`^(//|/\*\*?)\s*prop-ordering-ignore(\s|\*/|$)`)
)

// fileDisabled reports whether content carries a file-level disable comment.
// Only comment nodes count; the regex pre-check avoids walking files that
// never mention the directive.
func fileDisabled(root *sitter.Node, content []byte) bool {
	if !disableFileRegex.Match(content) {
		return false
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "comment" {
			continue
		}
		if disableFileRegex.MatchString(common.NodeText(child, content)) {
			return true
		}
	}
	return false
}

// ignored reports whether the node directly follows an ignore comment
func ignored(node *sitter.Node, content []byte) bool {
	prev := node.PrevSibling()
	if prev == nil || prev.Type() != "comment" {
		return false
	}
	return ignoreRegex.MatchString(common.NodeText(prev, content))
}
