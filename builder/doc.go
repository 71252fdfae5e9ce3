// Package builder assembles regular expressions from a tree of typed nodes.
//
// A tree is made of character classes ([ClassNode]), literal text
// ([LiteralNode]), groups ([Group]) combining their children in sequence or
// as alternatives, and zero-width lookaround assertions ([Assertion]). Each
// child is attached with a [Quantifier] fixed at attachment time:
//
//	b := builder.New()
//	b.Some(builder.Class(builder.Alphanumeric)).
//		Unique(builder.Text("@")).
//		Between(builder.Class(builder.Alphabetic), 2, 10)
//	pattern, err := b.Compile()
//
// Compiling also yields a position table mapping every group name to the
// capture index the engine will assign to it, so callers can look captures
// up by name. Capturing groups are emitted as plain parentheses and numbered
// by the position of their opening parenthesis, the same rule both engines
// of package regexp apply.
//
// Fluent calls cannot return errors. Construction errors (duplicate names,
// invalid quantifiers, empty classes) are recorded on the group where they
// happen, propagate to any group the faulty node is attached to, and are
// reported by [Group.Err], [Group.Compile] and [Group.FindGroupPosition].
package builder
