package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags are engine-independent matching flags.
type Flags uint8

const (
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase Flags = 1 << iota
	// Multiline makes ^ and $ match at line boundaries.
	Multiline
	// DotAll lets . match a newline.
	DotAll
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var parts []string
	if f.Has(IgnoreCase) {
		parts = append(parts, "ignorecase")
	}
	if f.Has(Multiline) {
		parts = append(parts, "multiline")
	}
	if f.Has(DotAll) {
		parts = append(parts, "dotall")
	}

	return strings.Join(parts, "|")
}

// inline renders f as an RE2 inline flag group. The group is non-capturing,
// so prefixing a pattern with it leaves group numbering untouched.
func (f Flags) inline() string {
	if f == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("(?")
	if f.Has(IgnoreCase) {
		sb.WriteByte('i')
	}
	if f.Has(Multiline) {
		sb.WriteByte('m')
	}
	if f.Has(DotAll) {
		sb.WriteByte('s')
	}
	sb.WriteByte(')')

	return sb.String()
}

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	if f.Has(DotAll) {
		opts |= regexp2.Singleline
	}

	return opts
}
