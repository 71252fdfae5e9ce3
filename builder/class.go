package builder

import (
	"fmt"
	"slices"
	"strings"
)

// CharClass is a predefined set of characters usable inside a ClassNode.
type CharClass uint8

const (
	// Alphabetic is [a-zA-Z].
	Alphabetic CharClass = iota + 1
	// Lowercase is [a-z].
	Lowercase
	// Uppercase is [A-Z].
	Uppercase
	// Numeric is [0-9].
	Numeric
	// Alphanumeric is [a-zA-Z0-9].
	Alphanumeric
	// Hexadecimal is [0-9a-fA-F].
	Hexadecimal
	// Whitespace is ASCII whitespace: tab, newline, form feed, carriage
	// return and space.
	Whitespace
	// Space is the space character alone.
	Space
	// Word is [0-9A-Za-z_]. Both Whitespace and Word stay ASCII-only on
	// every engine.
	Word
)

var classTokens = [...]string{
	Alphabetic:   "a-zA-Z",
	Lowercase:    "a-z",
	Uppercase:    "A-Z",
	Numeric:      "0-9",
	Alphanumeric: "a-zA-Z0-9",
	Hexadecimal:  "0-9a-fA-F",
	Whitespace:   `\t\n\f\r `,
	Space:        " ",
	Word:         "0-9A-Za-z_",
}

var classNames = [...]string{
	Alphabetic:   "alphabetic",
	Lowercase:    "lowercase",
	Uppercase:    "uppercase",
	Numeric:      "numeric",
	Alphanumeric: "alphanumeric",
	Hexadecimal:  "hexadecimal",
	Whitespace:   "whitespace",
	Space:        "space",
	Word:         "word",
}

func (c CharClass) valid() bool {
	return c >= Alphabetic && c <= Word
}

func (c CharClass) String() string {
	if !c.valid() {
		return fmt.Sprintf("CharClass(%d)", uint8(c))
	}

	return classNames[c]
}

type runeRange struct {
	from, to rune
}

// ClassNode renders a bracketed character class.
type ClassNode struct {
	classes []CharClass
	chars   []rune
	ranges  []runeRange
	negated bool
	err     error
}

// Class returns a class matching any of the predefined classes.
func Class(classes ...CharClass) *ClassNode {
	return new(ClassNode).WithClasses(classes...)
}

// Chars returns a class matching any of chars.
func Chars(chars ...rune) *ClassNode {
	return new(ClassNode).WithChars(chars...)
}

// Range returns a class matching the inclusive range from-to.
func Range(from, to rune) *ClassNode {
	return new(ClassNode).WithRange(from, to)
}

// WithClasses adds predefined classes to n. Duplicates are ignored.
func (n *ClassNode) WithClasses(classes ...CharClass) *ClassNode {
	for _, c := range classes {
		if !c.valid() {
			n.fail(fmt.Errorf("%w: %v", ErrInvalidClass, c))
			continue
		}
		if !slices.Contains(n.classes, c) {
			n.classes = append(n.classes, c)
		}
	}

	return n
}

// WithChars adds individual characters to n. Duplicates are ignored.
func (n *ClassNode) WithChars(chars ...rune) *ClassNode {
	for _, r := range chars {
		if !slices.Contains(n.chars, r) {
			n.chars = append(n.chars, r)
		}
	}

	return n
}

// WithRange adds the inclusive range from-to to n.
func (n *ClassNode) WithRange(from, to rune) *ClassNode {
	if from > to {
		n.fail(fmt.Errorf("%w: %q > %q", ErrInvalidRange, from, to))
		return n
	}
	n.ranges = append(n.ranges, runeRange{from: from, to: to})

	return n
}

// Negate makes n match any character it would not match otherwise.
func (n *ClassNode) Negate() *ClassNode {
	n.negated = !n.negated
	return n
}

func (n *ClassNode) fail(err error) {
	if n.err == nil {
		n.err = err
	}
}

func (n *ClassNode) check() error {
	switch {
	case n == nil:
		return ErrNilNode
	case n.err != nil:
		return n.err
	case len(n.classes) == 0 && len(n.chars) == 0 && len(n.ranges) == 0:
		return ErrEmptyClass
	}

	return nil
}

func (n *ClassNode) render(c *compiler, q Quantifier, _ bool) {
	var sb strings.Builder
	sb.WriteByte('[')
	if n.negated {
		sb.WriteByte('^')
	}
	for _, r := range n.ranges {
		writeClassRune(&sb, r.from)
		sb.WriteByte('-')
		writeClassRune(&sb, r.to)
	}
	for _, cl := range n.classes {
		sb.WriteString(classTokens[cl])
	}
	for _, r := range n.chars {
		writeClassRune(&sb, r)
	}
	sb.WriteByte(']')

	c.write(sb.String())
	c.write(q.String())
}

func (n *ClassNode) cloneNode() Node {
	return &ClassNode{
		classes: append([]CharClass(nil), n.classes...),
		chars:   append([]rune(nil), n.chars...),
		ranges:  append([]runeRange(nil), n.ranges...),
		negated: n.negated,
		err:     n.err,
	}
}

func (n *ClassNode) eachGroup(func(*Group)) {}

// writeClassRune escapes the characters that carry meaning inside brackets.
func writeClassRune(sb *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '[', '^', '-':
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
}
