package regexp

import (
	"errors"
	"fmt"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// ErrCompile is returned when neither engine accepts a pattern.
var ErrCompile = errors.New("cannot compile pattern")

// Engine identifies the backend a Regexp was compiled with.
type Engine uint8

const (
	// Core is the coregex RE2-compatible engine.
	Core Engine = iota
	// PCRE is the regexp2 backtracking engine.
	PCRE
)

func (e Engine) String() string {
	if e == PCRE {
		return "regexp2"
	}

	return "coregex"
}

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a regular expression and returns a compiled Regexp.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, 0)
}

// CompileFlags is like Compile but applies flags. Patterns that require
// PCRE/Perl-only features (detected by needsPCRE) are compiled with regexp2,
// as are patterns with a capturing group under a repetition, whose last
// iteration coregex does not report. Everything else uses coregex for speed.
func CompileFlags(pattern string, flags Flags) (*Regexp, error) {
	if needsPCRE(pattern) || repeatedCapture(pattern) {
		re, err := regexp2.Compile(pattern, flags.options())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompile, pattern, err)
		}

		return &Regexp{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(flags.inline() + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, pattern, err)
	}

	return &Regexp{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}

	return re
}

// QuoteMeta escapes all regular expression metacharacters in s. The result is
// valid literal text for both engines.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Engine reports which backend executes the Regexp.
func (r *Regexp) Engine() Engine {
	if r.pcre != nil {
		return PCRE
	}

	return Core
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches. Groups that did not
// participate are reported as -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return r.groupsToIndexes(s, m)
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		// coregex counts the whole match as a group; SubexpNames always
		// carries an entry for it at index 0.
		return len(r.core.SubexpNames()) - 1
	}

	max := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}

	return max
}

// Scan returns a Scanner over the successive non-overlapping matches of the
// Regexp in s.
func (r *Regexp) Scan(s string) *Scanner {
	return &Scanner{re: r, input: s}
}

func (r *Regexp) groupsToIndexes(s string, m *regexp2.Match) []int {
	n := r.NumSubexp()
	out := make([]int, 0, (n+1)*2)
	for i := 0; i <= n; i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}

		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}

	return out
}
