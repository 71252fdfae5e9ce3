package regexp

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Scanner walks the successive non-overlapping matches of a Regexp over one
// input. It is a stateful cursor and must not be shared between goroutines.
type Scanner struct {
	re    *Regexp
	input string

	// coregex: all matches are computed on the first call to Next so that
	// anchors and word boundaries see the whole input.
	all  [][]int
	pos  int
	done bool

	// regexp2
	m *regexp2.Match

	loc []int
	err error
}

// Next advances to the next match and reports whether one was found.
func (sc *Scanner) Next() bool {
	sc.loc = nil
	if sc.done || sc.err != nil {
		return false
	}

	if sc.re.core != nil {
		if sc.all == nil {
			sc.all = sc.re.core.FindAllStringSubmatchIndex(sc.input, -1)
			if sc.all == nil {
				sc.all = [][]int{}
			}
		}
		if sc.pos >= len(sc.all) {
			sc.done = true
			return false
		}

		sc.loc = sc.all[sc.pos]
		sc.pos++

		return true
	}

	var (
		m   *regexp2.Match
		err error
	)
	if sc.m == nil {
		m, err = sc.re.pcre.FindStringMatch(sc.input)
	} else {
		m, err = sc.re.pcre.FindNextMatch(sc.m)
	}
	if err != nil {
		sc.err = fmt.Errorf("scan %q: %w", sc.re.pattern, err)
		return false
	}
	if m == nil {
		sc.done = true
		return false
	}

	sc.m = m
	sc.loc = sc.re.groupsToIndexes(sc.input, m)

	return true
}

// Submatches returns the byte index pairs of the current match and its
// capture groups, with -1 for groups that did not participate. It returns nil
// when there is no current match.
func (sc *Scanner) Submatches() []int {
	return sc.loc
}

// Err returns the first engine error encountered by Next, if any.
func (sc *Scanner) Err() error {
	return sc.err
}
