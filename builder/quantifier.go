package builder

import (
	"fmt"
	"strconv"
)

type quantKind uint8

const (
	quantNone quantKind = iota
	quantOptional
	quantOneOrMore
	quantZeroOrMore
	quantExactly
	quantBetween
	quantAtLeast
)

// Quantifier is the repetition attached to a child when it is added to a
// group. The zero value is None.
type Quantifier struct {
	kind     quantKind
	min, max int
}

var (
	// None matches exactly once and renders no suffix.
	None = Quantifier{kind: quantNone}
	// Optional renders "?".
	Optional = Quantifier{kind: quantOptional}
	// OneOrMore renders "+".
	OneOrMore = Quantifier{kind: quantOneOrMore}
	// ZeroOrMore renders "*".
	ZeroOrMore = Quantifier{kind: quantZeroOrMore}
)

// Exactly renders "{n}".
func Exactly(n int) Quantifier {
	return Quantifier{kind: quantExactly, min: n, max: n}
}

// Between renders "{min,max}".
func Between(min, max int) Quantifier {
	return Quantifier{kind: quantBetween, min: min, max: max}
}

// AtLeast renders "{min,}".
func AtLeast(min int) Quantifier {
	return Quantifier{kind: quantAtLeast, min: min, max: -1}
}

// IsNone reports whether q leaves its node unrepeated.
func (q Quantifier) IsNone() bool {
	return q.kind == quantNone
}

// Validate checks the bounds of q.
func (q Quantifier) Validate() error {
	switch q.kind {
	case quantExactly, quantAtLeast:
		if q.min < 0 {
			return fmt.Errorf("%w: negative count %d", ErrInvalidQuantifier, q.min)
		}
	case quantBetween:
		if q.min < 0 || q.max < 0 {
			return fmt.Errorf("%w: negative bound in {%d,%d}", ErrInvalidQuantifier, q.min, q.max)
		}
		if q.min > q.max {
			return fmt.Errorf("%w: min %d > max %d", ErrInvalidQuantifier, q.min, q.max)
		}
	}

	return nil
}

// String returns the pattern suffix of q.
func (q Quantifier) String() string {
	switch q.kind {
	case quantOptional:
		return "?"
	case quantOneOrMore:
		return "+"
	case quantZeroOrMore:
		return "*"
	case quantExactly:
		return "{" + strconv.Itoa(q.min) + "}"
	case quantBetween:
		return "{" + strconv.Itoa(q.min) + "," + strconv.Itoa(q.max) + "}"
	case quantAtLeast:
		return "{" + strconv.Itoa(q.min) + ",}"
	default:
		return ""
	}
}
