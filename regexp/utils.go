package regexp

import (
	"regexp/syntax"
	"strings"
)

// pcreOnly lists constructs that RE2 cannot execute, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*nla:", "(*plb:", "(*nlb:",
	"(*positive_lookahead:", "(*negative_lookahead:",
	"(*positive_lookbehind:", "(*negative_lookbehind:",
	// atomic, branch reset, conditional, comment
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// escapes Go does not know
	`\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\K`, `\e`, `\a`,
	`\x{`, `\o{`, `\p{`, `\P{`,
	// named backreferences
	`\k<`, `\k'`, `\k{`, `\g`, "(?P=",
	// anchors (Go supports ^ and $ only)
	`\A`, `\Z`, `\G`,
}

// needsPCRE checks if the pattern contains PCRE2-only features.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: an unescaped backslash followed by 1-9.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// NOTE(dwisiswant0): Go supports (?P<name>...), but not (?'name'...) or
	// (?<name>...).
	if !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")) {
		return true
	}

	return false
}

// repeatedCapture reports whether pattern has a capturing group inside a
// star, plus or counted repetition. Unparseable patterns report false and are
// left for the engine to reject.
func repeatedCapture(pattern string) bool {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return false
	}

	return hasRepeatedCapture(re, false)
}

func hasRepeatedCapture(re *syntax.Regexp, repeated bool) bool {
	switch re.Op {
	case syntax.OpCapture:
		if repeated {
			return true
		}
	case syntax.OpStar, syntax.OpPlus, syntax.OpRepeat:
		repeated = true
	}

	for _, sub := range re.Sub {
		if hasRepeatedCapture(sub, repeated) {
			return true
		}
	}

	return false
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)

	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
