package handlejson

import (
	"fmt"

	"github.com/chintanshah35/handlejson/internal/errpos"
	"github.com/chintanshah35/handlejson/internal/guard"
	"github.com/chintanshah35/handlejson/schema"
)

// excerptWidth bounds the input window attached to decode diagnostics.
const excerptWidth = 40

// Parse is the primary guarded entry point. It runs the pipeline stages in
// fixed order — size gate, decode (with optional date revival and Reviver
// hook), depth gate, key sanitization, schema validation — and stops at the
// first failing stage. The returned error is always a *Issue; Parse never
// panics past its boundary.
//
// The contract is all or nothing: a late-stage failure discards the
// successfully decoded value, so a non-error result is fully vetted.
func Parse(data []byte, opts ...ParseOpt) (any, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, issue := runPipeline(data, opt)
	if issue != nil {
		return nil, issue
	}
	return v, nil
}

// SafeParse collapses any failure to opt.Default (nil when unset).
func SafeParse(data []byte, opts ...ParseOpt) any {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, issue := runPipeline(data, opt)
	if issue != nil {
		return opt.Default
	}
	return v
}

// ParseDetailed reports the outcome as a structured record. Offset and
// Excerpt carry position diagnostics for decode-stage failures only;
// size/depth/schema rejections are identified by Error alone.
func ParseDetailed(data []byte, opts ...ParseOpt) ParseResult {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, issue := runPipeline(data, opt)
	if issue == nil {
		return ParseResult{Value: v, OK: true, Offset: -1}
	}
	return ParseResult{
		Error:   issue.Message,
		Offset:  issue.Offset,
		Excerpt: issue.InputFragment,
	}
}

func runPipeline(data []byte, opt ParseOpt) (v any, issue *Issue) {
	// 1. size gate: cheap rejection before any decode work
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, newIssue(CodeTooBig,
			fmt.Sprintf("input of %d bytes exceeds limit of %d", len(data), opt.MaxBytes))
	}

	// 2. decode + revive; a Reviver hook panicking is a decode failure
	defer func() {
		if r := recover(); r != nil {
			v = nil
			issue = newIssue(CodeParseError, fmt.Sprintf("reviver panic: %v", r))
		}
	}()
	if err := getDriver().Unmarshal(data, &v); err != nil {
		issue := newIssue(CodeParseError, "invalid JSON: "+err.Error())
		issue.Cause = err
		if off, ok := errpos.Offset(err); ok {
			issue.Offset = off
			issue.InputFragment = errpos.Excerpt(data, off, excerptWidth)
		}
		return nil, issue
	}
	if needsRevive(opt) {
		v = reviveTree("", v, opt)
	}

	// 3. depth gate (a second full tree walk, distinct from the decode walk)
	if guard.ExceedsDepth(v, opt.MaxDepth) {
		return nil, newIssue(CodeMaxDepth,
			fmt.Sprintf("nesting exceeds maximum depth of %d", opt.MaxDepth))
	}

	// 4. key sanitization
	if opt.Sanitize {
		v, _ = guard.Sanitize(v)
	}

	// 5. schema validation
	if opt.Schema != nil {
		if res := schema.Validate(v, opt.Schema); !res.Valid {
			return nil, &Issue{
				Code:    CodeInvalidType,
				Path:    res.Err.Path,
				Message: res.Err.Message,
				Cause:   res.Err,
				Offset:  -1,
			}
		}
	}
	return v, nil
}

// Valid reports whether data is well-formed JSON without building a value.
func Valid(data []byte) bool { return getDriver().Valid(data) }
