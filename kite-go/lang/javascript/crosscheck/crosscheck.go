// Package crosscheck validates javascript source with the tree-sitter
// grammar, independently of our own parser.
package crosscheck

import (
	"fmt"

	sitter "github.com/kiteco/go-tree-sitter"
	jssitter "github.com/kiteco/go-tree-sitter/javascript"
)

// Error describes the first node tree-sitter could not parse. Line and
// Column are 1-based, Column counts bytes.
type Error struct {
	Line   int
	Column int
	Type   string // ERROR or MISSING
	Text   string // source covered by the node, truncated
}

// Error implements error
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: tree-sitter %s node at %q", e.Line, e.Column, e.Type, e.Text)
}

const maxText = 40

// Validate parses src with tree-sitter and returns an *Error for the first
// ERROR or MISSING node in the tree, in source order.
func Validate(src []byte) error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(jssitter.GetLanguage())
	tree := parser.Parse(src)
	defer tree.Close()

	if n := firstInvalid(tree.RootNode()); n != nil {
		text := n.Content(src)
		if len(text) > maxText {
			text = text[:maxText-3] + "..."
		}
		start := n.StartPoint()
		return &Error{
			Line:   int(start.Row) + 1,
			Column: int(start.Column) + 1,
			Type:   n.Type(),
			Text:   text,
		}
	}
	return nil
}

func firstInvalid(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if typ := n.Type(); typ == "ERROR" || typ == "MISSING" {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstInvalid(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
