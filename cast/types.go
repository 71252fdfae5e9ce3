package cast

import "go.dw1.io/safemath"

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Float is a constraint for floating-point targets.
type Float interface {
	~float32 | ~float64
}
