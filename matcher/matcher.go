package matcher

import (
	"errors"
	"fmt"

	"go.dw1.io/x/regexbuilder/builder"
	"go.dw1.io/x/regexbuilder/cast"
	"go.dw1.io/x/regexbuilder/regexp"
)

// ErrNoMatch is returned by match accessors when Find has not been called or
// its last call returned false.
var ErrNoMatch = errors.New("no current match")

// Matcher binds a builder tree and an input to the matching engine.
//
// A Matcher holds a stateful cursor and must not be used from several
// goroutines at once.
type Matcher struct {
	b     *builder.Builder
	tree  *builder.Builder
	prog  *builder.Program
	re    *regexp.Regexp
	input string
	sc    *regexp.Scanner
	loc   []int
	opts  options
}

// New compiles b and prepares to scan input. Names are resolved against the
// tree as it was at this call; later changes to b do not affect the Matcher.
func New(b *builder.Builder, input string, opts ...Option) (*Matcher, error) {
	return newMatcher(b, input, newOptions(opts))
}

func newMatcher(b *builder.Builder, input string, o options) (*Matcher, error) {
	if b == nil || b.Group == nil {
		return nil, builder.ErrNilNode
	}

	prog, err := b.Program()
	if err != nil {
		return nil, err
	}

	re, err := regexp.CompileFlags(prog.Pattern(), o.flags)
	if err != nil {
		return nil, err
	}

	o.logger.Debugf("compiled %q for %s (captures=%d, flags=%s)",
		prog.Pattern(), re.Engine(), prog.NumCaptures(), o.flags)

	return &Matcher{
		b:     b,
		tree:  b.Clone(),
		prog:  prog,
		re:    re,
		input: input,
		sc:    re.Scan(input),
		opts:  o,
	}, nil
}

// Builder returns the builder m was created from.
func (m *Matcher) Builder() *builder.Builder { return m.b }

// Pattern returns the compiled pattern.
func (m *Matcher) Pattern() string { return m.prog.Pattern() }

// Input returns the scanned text.
func (m *Matcher) Input() string { return m.input }

// Engine reports which engine executes the pattern.
func (m *Matcher) Engine() regexp.Engine { return m.re.Engine() }

// Find advances to the next non-overlapping match and reports whether one
// was found. After it returns false, Err reports whether scanning stopped on
// an engine error.
func (m *Matcher) Find() bool {
	m.loc = nil
	if !m.sc.Next() {
		return false
	}
	m.loc = m.sc.Submatches()

	return true
}

// Err returns the engine error that stopped Find, if any.
func (m *Matcher) Err() error {
	return m.sc.Err()
}

// Group returns the whole current match.
func (m *Matcher) Group() (string, error) {
	if err := m.current(); err != nil {
		return "", err
	}

	return m.input[m.loc[0]:m.loc[1]], nil
}

// Start returns the offset where the current match begins.
func (m *Matcher) Start() (int, error) {
	if err := m.current(); err != nil {
		return 0, err
	}

	return m.loc[0], nil
}

// End returns the offset right after the current match.
func (m *Matcher) End() (int, error) {
	if err := m.current(); err != nil {
		return 0, err
	}

	return m.loc[1], nil
}

// GroupByName returns the text captured by the group called name. ok is
// false when the group did not participate in the current match.
func (m *Matcher) GroupByName(name string) (value string, ok bool, err error) {
	start, end, ok, err := m.span(name)
	if !ok || err != nil {
		return "", ok, err
	}

	return m.input[start:end], true, nil
}

// GroupAsInt parses the text captured by the group called name as a base-10
// integer. Non-numeric text fails with [cast.ErrParse].
func (m *Matcher) GroupAsInt(name string) (int, bool, error) {
	s, ok, err := m.GroupByName(name)
	if !ok || err != nil {
		return 0, ok, err
	}

	v, err := cast.ToInt[int](s)
	if err != nil {
		return 0, true, fmt.Errorf("group %q: %w", name, err)
	}

	return v, true, nil
}

// GroupAsFloat parses the text captured by the group called name as a
// floating-point number. Non-numeric text fails with [cast.ErrParse].
func (m *Matcher) GroupAsFloat(name string) (float64, bool, error) {
	s, ok, err := m.GroupByName(name)
	if !ok || err != nil {
		return 0, ok, err
	}

	v, err := cast.ToFloat[float64](s)
	if err != nil {
		return 0, true, fmt.Errorf("group %q: %w", name, err)
	}

	return v, true, nil
}

// StartOf returns the offset where the group called name begins in the
// current match.
func (m *Matcher) StartOf(name string) (int, bool, error) {
	start, _, ok, err := m.span(name)
	return start, ok, err
}

// EndOf returns the offset right after the group called name in the current
// match.
func (m *Matcher) EndOf(name string) (int, bool, error) {
	_, end, ok, err := m.span(name)
	return end, ok, err
}

// Replace returns a copy of the input where the text captured by the group
// called name in the current match is replaced by replacement. ok is false,
// and the input is returned unchanged, when the group did not participate.
func (m *Matcher) Replace(name, replacement string) (string, bool, error) {
	start, end, ok, err := m.span(name)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return m.input, false, nil
	}

	return m.input[:start] + replacement + m.input[end:], true, nil
}

// Groups returns the captures of every named group that participated in the
// current match, in declaration order.
func (m *Matcher) Groups() (Groups, error) {
	if err := m.current(); err != nil {
		return nil, err
	}

	var out Groups
	for _, name := range m.prog.Names() {
		start, end, ok, err := m.span(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, Capture{Name: name, Value: m.input[start:end], Start: start, End: end})
	}

	return out, nil
}

func (m *Matcher) current() error {
	if m.loc == nil {
		return fmt.Errorf("%w: call Find first (pattern %q)", ErrNoMatch, m.prog.Pattern())
	}

	return nil
}

func (m *Matcher) span(name string) (start, end int, ok bool, err error) {
	if err := m.current(); err != nil {
		return 0, 0, false, err
	}

	pos, err := m.prog.Position(name)
	if err != nil {
		return 0, 0, false, err
	}
	if 2*pos+1 >= len(m.loc) {
		return 0, 0, false, fmt.Errorf("group %q: engine reported %d groups, want index %d",
			name, len(m.loc)/2-1, pos)
	}

	start, end = m.loc[2*pos], m.loc[2*pos+1]
	if start < 0 {
		return 0, 0, false, nil
	}

	return start, end, true, nil
}
