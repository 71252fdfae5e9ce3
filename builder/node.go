package builder

// Node is one element of a pattern tree: a *ClassNode, *LiteralNode, *Group,
// *Builder or *Assertion.
type Node interface {
	// render writes the node followed by q. nested is false only for the
	// root of a compilation and for assertion bodies, where an alternation
	// cannot leak into surrounding text.
	render(c *compiler, q Quantifier, nested bool)
	cloneNode() Node
	check() error
	eachGroup(fn func(*Group))
}

type term struct {
	node  Node
	quant Quantifier
}

// unwrap replaces a *Builder by its root group.
func unwrap(n Node) Node {
	if b, ok := n.(*Builder); ok {
		if b == nil || b.Group == nil {
			return nil
		}
		return b.Group
	}

	return n
}

func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Group:
		return v == nil
	case *ClassNode:
		return v == nil
	case *LiteralNode:
		return v == nil
	case *Assertion:
		return v == nil
	case *Builder:
		return v == nil || v.Group == nil
	}

	return false
}
