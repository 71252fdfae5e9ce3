// Package cast converts captured text to numbers.
//
// It uses [cast] for parsing and [safemath] for narrowing, so a capture that
// overflows the requested type is reported instead of silently truncated.
// Every failure wraps [ErrParse].
package cast
