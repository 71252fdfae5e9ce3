// Package regexp selects the fastest regex engine available for a pattern.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute, such as the lookaround assertions emitted by the builder,
// the package automatically falls back to [regexp2]. Patterns that repeat a
// capturing group take the same route, so the group reports its last
// iteration.
//
// Both engines number capturing groups by the position of their opening
// parenthesis, which is the contract the builder's position table relies on.
// All offsets reported by this package are byte offsets into the input.
package regexp
