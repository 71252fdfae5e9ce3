package builder

import "fmt"

// AssertionKind selects the lookaround an Assertion renders.
type AssertionKind uint8

const (
	// PositiveLookahead renders (?=...).
	PositiveLookahead AssertionKind = iota
	// NegativeLookahead renders (?!...).
	NegativeLookahead
	// PositiveLookbehind renders (?<=...).
	PositiveLookbehind
	// NegativeLookbehind renders (?<!...).
	NegativeLookbehind
)

var assertionOpeners = [...]string{
	PositiveLookahead:  "(?=",
	NegativeLookahead:  "(?!",
	PositiveLookbehind: "(?<=",
	NegativeLookbehind: "(?<!",
}

func (k AssertionKind) String() string {
	switch k {
	case PositiveLookahead:
		return "lookahead"
	case NegativeLookahead:
		return "negative lookahead"
	case PositiveLookbehind:
		return "lookbehind"
	case NegativeLookbehind:
		return "negative lookbehind"
	default:
		return fmt.Sprintf("AssertionKind(%d)", uint8(k))
	}
}

// Assertion is a zero-width lookaround around a body node. It has no name
// and never claims a capture index, although capturing groups inside its
// body do.
//
// Patterns containing assertions are executed by the regexp2 engine.
type Assertion struct {
	kind AssertionKind
	body Node
}

// Lookahead asserts that body matches at the current position.
func Lookahead(body Node) *Assertion {
	return &Assertion{kind: PositiveLookahead, body: unwrap(body)}
}

// NotLookahead asserts that body does not match at the current position.
func NotLookahead(body Node) *Assertion {
	return &Assertion{kind: NegativeLookahead, body: unwrap(body)}
}

// Lookbehind asserts that body matches right before the current position.
func Lookbehind(body Node) *Assertion {
	return &Assertion{kind: PositiveLookbehind, body: unwrap(body)}
}

// NotLookbehind asserts that body does not match right before the current
// position.
func NotLookbehind(body Node) *Assertion {
	return &Assertion{kind: NegativeLookbehind, body: unwrap(body)}
}

// Kind returns the lookaround kind of a.
func (a *Assertion) Kind() AssertionKind {
	return a.kind
}

func (a *Assertion) render(c *compiler, q Quantifier, _ bool) {
	if !q.IsNone() {
		c.write("(?:")
	}
	c.write(assertionOpeners[a.kind])
	a.body.render(c, None, false)
	c.write(")")
	if !q.IsNone() {
		c.write(")" + q.String())
	}
}

func (a *Assertion) check() error {
	if a == nil || isNilNode(a.body) {
		return ErrNilNode
	}
	if a.kind > NegativeLookbehind {
		return fmt.Errorf("unknown assertion kind %v", a.kind)
	}

	return a.body.check()
}

func (a *Assertion) cloneNode() Node {
	return &Assertion{kind: a.kind, body: a.body.cloneNode()}
}

func (a *Assertion) eachGroup(fn func(*Group)) {
	a.body.eachGroup(fn)
}
