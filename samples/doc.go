// Package samples holds ready-made builders for common formats. They use
// only the public API of package builder and double as usage examples.
package samples
