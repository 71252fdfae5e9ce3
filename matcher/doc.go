// Package matcher runs a compiled builder tree over an input and exposes the
// captures by group name.
//
// A Matcher is a cursor: [Matcher.Find] must return true before any match
// accessor is used, otherwise the accessor fails with [ErrNoMatch]. Named
// accessors distinguish a name the tree does not declare
// ([builder.ErrGroupNotFound]) from a declared group that did not take part
// in the current match, which is reported as ok == false with a nil error.
//
// Offsets are byte offsets into the input.
package matcher
