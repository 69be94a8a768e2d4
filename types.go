package handlejson

import "github.com/chintanshah35/handlejson/schema"

// DateMode dictates how temporal values are rendered by Stringify.
type DateMode int

const (
	DateOff       DateMode = iota // Leave time.Time to the encoder default.
	DateISO                       // RFC3339 UTC text with millisecond precision.
	DateUnixMilli                 // Numeric epoch milliseconds.
)

// Reviver transforms a decoded node. It runs bottom-up after date revival,
// so an ISO-shaped string arrives already converted to time.Time.
type Reviver func(key string, v any) any

// Replacer transforms a node before serialization. It runs first at every
// node; date, bigint, and cycle handling see its return value.
type Replacer func(key string, v any) any

// ParseOpt bundles options for the guarded parse pipeline. The zero value
// disables every gate.
type ParseOpt struct {
	MaxBytes    int64         // Size gate; 0 disables.
	MaxDepth    int           // Nesting gate; 0 disables.
	Sanitize    bool          // Strip prototype-pollution key names at every level.
	Schema      schema.Object // Shape check after sanitization; nil disables.
	ReviveDates bool          // Convert ISO-8601-shaped string leaves to time.Time.
	Reviver     Reviver       // Optional per-node hook, runs after date revival.
	Default     any           // SafeParse fallback on any failure.
}

// EncodeOpt bundles options for Stringify.
type EncodeOpt struct {
	Indent   int      // Spaces per level; 0 means compact output.
	Dates    DateMode // Temporal value rendering.
	Replacer Replacer // Optional per-node hook.
}

// ParseResult is the detailed outcome of ParseDetailed.
type ParseResult struct {
	Value any
	OK    bool
	Error string // Human-readable failure reason; empty when OK.
	// Offset and Excerpt are populated for decode-stage failures only.
	// Offset is best-effort (-1 when extraction fails); Excerpt is a bounded
	// window of the input around Offset with control characters escaped.
	Offset  int64
	Excerpt string
}
