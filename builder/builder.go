package builder

// Builder owns the root group of a pattern tree. All fluent methods of
// Group are available on it, and a Builder can itself be attached to
// another tree as a group.
type Builder struct {
	*Group
}

// New returns a builder whose root concatenates its children.
func New() *Builder {
	return NewWith(Sequence, Undefined)
}

// NewAlternative returns a builder whose root matches any of its children.
func NewAlternative() *Builder {
	return NewWith(Alternative, Undefined)
}

// NewWith returns a builder with the given root combination and capture
// mode.
func NewWith(c Combination, m CaptureMode) *Builder {
	return &Builder{Group: NewGroup(c, m)}
}

// Clone returns a deep, independent copy of b.
func (b *Builder) Clone() *Builder {
	return &Builder{Group: b.Group.Clone()}
}

// Truncate keeps the first n top-level children of b and drops the rest.
func (b *Builder) Truncate(n int) *Builder {
	if n < 0 {
		n = 0
	}
	if n < len(b.terms) {
		b.terms = b.terms[:n:n]
	}

	return b
}
