package handlejson

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// circularMarker replaces a composite value that has already been emitted
// once within the same Stringify call.
const circularMarker = "[Circular]"

// Stringify serializes v with cycle protection, date and bigint coercion,
// and an optional Replacer hook. Failures (a hook panicking, an encoder
// rejection) are returned as an error, never raised.
//
// Go encoders expose no per-node replacement hook and serialize time.Time
// natively, so every transform runs in a single pre-pass over the value
// graph before the encoder sees it.
func Stringify(v any, opts ...EncodeOpt) (out string, err error) {
	var opt EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	defer func() {
		if r := recover(); r != nil {
			out = ""
			issue := newIssue(CodeStringify, fmt.Sprintf("replacer panic: %v", r))
			err = issue
		}
	}()

	seen := make(seenSet)
	tv, _ := transform("", v, opt, seen)

	var data []byte
	if opt.Indent > 0 {
		data, err = getDriver().MarshalIndent(tv, "", strings.Repeat(" ", opt.Indent))
	} else {
		data, err = getDriver().Marshal(tv)
	}
	if err != nil {
		issue := newIssue(CodeStringify, "encode failed: "+err.Error())
		issue.Cause = err
		return "", issue
	}
	return string(data), nil
}

// SafeStringify collapses any failure to ("", false).
func SafeStringify(v any, opts ...EncodeOpt) (string, bool) {
	out, err := Stringify(v, opts...)
	if err != nil {
		return "", false
	}
	return out, true
}

// transform applies the per-node policy chain: Replacer hook first, then
// date mode, bigint stringification, and cycle substitution, descending
// into objects and arrays. The second result is false for node kinds with
// no JSON projection; containers translate that to the encoder's native
// behavior (omit from objects, null in arrays).
func transform(key string, v any, opt EncodeOpt, seen seenSet) (any, bool) {
	if opt.Replacer != nil {
		v = opt.Replacer(key, v)
	}
	switch vv := v.(type) {
	case time.Time:
		switch opt.Dates {
		case DateISO:
			return formatISOMillis(vv), true
		case DateUnixMilli:
			return vv.UnixMilli(), true
		}
		return vv, true
	case *big.Int:
		if vv == nil {
			return nil, true
		}
		// The output format has no arbitrary-precision literal; a trailing
		// marker keeps the digits lossless.
		return vv.String() + "n", true
	case map[string]any:
		if id, ok := compositeID(vv); ok {
			if seen.has(id) {
				return circularMarker, true
			}
			seen.add(id)
		}
		out := make(map[string]any, len(vv))
		for k, elem := range vv {
			tv, keep := transform(k, elem, opt, seen)
			if !keep {
				continue
			}
			out[k] = tv
		}
		return out, true
	case []any:
		if id, ok := compositeID(vv); ok {
			if seen.has(id) {
				return circularMarker, true
			}
			seen.add(id)
		}
		out := make([]any, len(vv))
		for i, elem := range vv {
			tv, keep := transform(strconv.Itoa(i), elem, opt, seen)
			if !keep {
				tv = nil
			}
			out[i] = tv
		}
		return out, true
	}
	if unrepresentable(v) {
		return nil, false
	}
	return v, true
}

// seenSet is the structural-identity set of composites already emitted in
// one top-level call. Membership is add-only for the lifetime of the call:
// re-encountering a composite at a sibling position after its subtree
// closed still yields the circular marker. That is deliberately broader
// than strict ancestor-cycle detection.
type seenSet map[uintptr]struct{}

func (s seenSet) has(id uintptr) bool { _, ok := s[id]; return ok }
func (s seenSet) add(id uintptr)      { s[id] = struct{}{} }

// compositeID returns the reference identity of a map or slice. Zero-length
// slices are excluded: they share the runtime's zero base, and an empty
// composite cannot participate in a cycle.
func compositeID(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	case reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

// unrepresentable reports node kinds with no JSON projection.
func unrepresentable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return true
	}
	return false
}
