// Package json encodes match results.
//
// On platforms supported by sonic it delegates to [sonic.ConfigStd]; elsewhere
// it falls back to encoding/json with the same observable output.
package json
