package builder

import "errors"

// ErrDuplicateName indicates that two groups of one tree carry the same name.
var ErrDuplicateName = errors.New("duplicate group name")

// ErrInvalidName indicates an empty name or a name set on a group that cannot
// capture.
var ErrInvalidName = errors.New("invalid group name")

// ErrInvalidQuantifier indicates negative bounds or min > max.
var ErrInvalidQuantifier = errors.New("invalid quantifier")

// ErrEmptyClass indicates a character class with no member.
var ErrEmptyClass = errors.New("empty character class")

// ErrInvalidRange indicates a character range whose start follows its end.
var ErrInvalidRange = errors.New("invalid character range")

// ErrNilNode indicates an attempt to attach a nil node.
var ErrNilNode = errors.New("nil node")

// ErrGroupNotFound is returned when no group of the tree carries the
// requested name.
var ErrGroupNotFound = errors.New("group name not found")

// ErrInvalidClass indicates an unknown predefined character class.
var ErrInvalidClass = errors.New("invalid character class")

// ErrCycle indicates an attempt to attach a group inside its own subtree.
var ErrCycle = errors.New("group attached to its own subtree")
