package cast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrParse indicates that a text is not a valid number for the requested
// type.
var ErrParse = errors.New("cannot parse number")

// ToInt parses s as a base-10 integer of type T. An optional sign is
// accepted and leading zeros are ignored, so "08" yields 8.
func ToInt[T Integer](s string) (T, error) {
	var zero T

	digits, ok := normalizeDecimal(s)
	if !ok {
		return zero, fmt.Errorf("%w: %q is not a decimal integer", ErrParse, s)
	}

	wide, err := cast.ToE[int64](digits)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	v, err := safemath.ConvertAny[T](wide)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
	}

	return v, nil
}

// ToFloat parses s as a floating-point number of type T.
func ToFloat[T Float](s string) (T, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty text", ErrParse)
	}

	v, err := cast.ToE[float64](trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	return T(v), nil
}

// normalizeDecimal validates s as [+-]?[0-9]+ and strips leading zeros, which
// cast would otherwise read as an octal prefix.
func normalizeDecimal(s string) (string, bool) {
	s = strings.TrimSpace(s)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	if s == "" {
		return "", false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0", true
	}

	return sign + s, true
}
