// Package types provides type definitions for structured data used throughout the disclosure-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Warning codes for tolerated fallbacks. Each code identifies one degradation
// path so callers and tests can assert on the exact fallback taken.
const (
	WarnMissingInput   = "missing_input"    // expected input file absent, stage continued with empty content
	WarnDecodeFallback = "decode_fallback"  // file was not valid UTF-8, decoded as GBK instead
	WarnUnreadable     = "unreadable_input" // file exists but could not be read or decoded
	WarnInvalidJSON    = "invalid_json"     // artifact did not parse, defaults substituted
	WarnSchemaMismatch = "schema_mismatch"  // artifact parsed but failed schema validation
	WarnIndexReset     = "index_reset"      // document index was malformed, rebuilt from empty
)

// Warning represents a tolerated degradation the pipeline continued through.
// Warnings are returned alongside values rather than printed at the point of
// occurrence, so every fallback stays observable to callers and tests.
type Warning struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", w.Code, w.Path, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}
