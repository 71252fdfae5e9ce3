package builder

import (
	"strings"
	"unicode/utf8"

	"go.dw1.io/x/regexbuilder/regexp"
)

// LiteralNode matches its text verbatim. Metacharacters are escaped when the
// node is rendered.
type LiteralNode struct {
	segments []string
}

// Text returns a literal matching the concatenation of segments.
func Text(segments ...string) *LiteralNode {
	return &LiteralNode{segments: append([]string(nil), segments...)}
}

// Append adds segments to the end of the literal.
func (n *LiteralNode) Append(segments ...string) *LiteralNode {
	n.segments = append(n.segments, segments...)
	return n
}

// Text returns the text the literal matches.
func (n *LiteralNode) Text() string {
	return strings.Join(n.segments, "")
}

func (n *LiteralNode) render(c *compiler, q Quantifier, _ bool) {
	text := n.Text()
	quoted := regexp.QuoteMeta(text)

	// A quantifier must bind to the whole text, not its last character.
	if !q.IsNone() && utf8.RuneCountInString(text) != 1 {
		c.write("(?:" + quoted + ")" + q.String())
		return
	}

	c.write(quoted + q.String())
}

func (n *LiteralNode) check() error {
	if n == nil {
		return ErrNilNode
	}

	return nil
}

func (n *LiteralNode) cloneNode() Node {
	return &LiteralNode{segments: append([]string(nil), n.segments...)}
}

func (n *LiteralNode) eachGroup(func(*Group)) {}
