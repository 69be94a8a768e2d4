package handlejson

// Package handlejson provides:
//
// - Non-throwing JSON parse/stringify entry points (Parse/SafeParse/Stringify)
// - Structural schema validation with precise error paths via the schema package
// - Cycle-safe serialization with date/bigint coercion and custom hooks
// - A security-gated parse pipeline (size cap, depth cap, key sanitization)
// - Chunked input reassembly with opportunistic whole-document parsing
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the schema union under schema/ and alternate codec drivers under driver/.
// - Every public operation is total: failures are returned as values, never raised.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := handlejson.Parse(data, handlejson.ParseOpt{MaxBytes: 1 << 20, Sanitize: true})
//	v := handlejson.SafeParse(data, handlejson.ParseOpt{Default: map[string]any{}})
//
//	s, err := handlejson.Stringify(v, handlejson.EncodeOpt{Dates: handlejson.DateISO, Indent: 2})
