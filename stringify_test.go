package handlejson_test

import (
	"math/big"
	"reflect"
	"strings"
	"testing"
	"time"

	handlejson "github.com/chintanshah35/handlejson"
)

func TestStringify_Compact(t *testing.T) {
	out, err := handlejson.Stringify(map[string]any{"b": 2.0, "a": 1.0})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if out != `{"a":1,"b":2}` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestStringify_Indent(t *testing.T) {
	out, err := handlejson.Stringify(map[string]any{"a": 1.0}, handlejson.EncodeOpt{Indent: 2})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, "\n  \"a\": 1") {
		t.Fatalf("expected two-space indentation, got %q", out)
	}
}

func TestStringify_SelfReferenceCycle(t *testing.T) {
	a := map[string]any{"name": "a"}
	a["self"] = a
	out, err := handlejson.Stringify(a)
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if n := strings.Count(out, "[Circular]"); n != 1 {
		t.Fatalf("expected exactly one circular marker, got %d in %s", n, out)
	}
	if !strings.Contains(out, `"self":"[Circular]"`) {
		t.Fatalf("marker must replace the cyclic position: %s", out)
	}
}

func TestStringify_MutualCycle(t *testing.T) {
	a := map[string]any{}
	b := map[string]any{"a": a}
	a["b"] = b
	out, err := handlejson.Stringify(a)
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, "[Circular]") {
		t.Fatalf("expected circular marker: %s", out)
	}
}

func TestStringify_CycleThroughArray(t *testing.T) {
	arr := []any{1.0, nil}
	arr[1] = arr
	out, err := handlejson.Stringify(map[string]any{"xs": arr})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, "[Circular]") {
		t.Fatalf("expected circular marker: %s", out)
	}
}

// Shared (diamond) references are flagged as circular too: the seen set is
// add-only per call, which is a known characteristic of the policy, not a
// bug. Distinct empty composites are exempt.
func TestStringify_SharedReferenceFlaggedAsCircular(t *testing.T) {
	shared := map[string]any{"v": 1.0}
	out, err := handlejson.Stringify(map[string]any{"a": shared, "b": shared})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if n := strings.Count(out, "[Circular]"); n != 1 {
		t.Fatalf("expected the second occurrence flagged, got %d in %s", n, out)
	}
}

func TestStringify_DistinctEmptyArraysNotFlagged(t *testing.T) {
	out, err := handlejson.Stringify(map[string]any{"a": []any{}, "b": []any{}})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if strings.Contains(out, "[Circular]") {
		t.Fatalf("empty arrays cannot cycle: %s", out)
	}
	if out != `{"a":[],"b":[]}` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestStringify_RoundTripAcyclic(t *testing.T) {
	v := map[string]any{
		"name": "John",
		"n":    1.5,
		"ok":   true,
		"none": nil,
		"xs":   []any{1.0, "two", false, map[string]any{"deep": []any{}}},
	}
	out, err := handlejson.Stringify(v)
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	back, err := handlejson.Parse([]byte(out))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(back, v) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", back, v)
	}
}

func TestStringify_DateModes(t *testing.T) {
	d := time.Date(2024, 6, 1, 12, 30, 45, 123000000, time.UTC)

	out, err := handlejson.Stringify(map[string]any{"d": d}, handlejson.EncodeOpt{Dates: handlejson.DateISO})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, `"d":"2024-06-01T12:30:45.123Z"`) {
		t.Fatalf("unexpected iso output: %s", out)
	}

	out, err = handlejson.Stringify(map[string]any{"d": d}, handlejson.EncodeOpt{Dates: handlejson.DateUnixMilli})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	back, err := handlejson.Parse([]byte(out))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got := back.(map[string]any)["d"].(float64)
	if int64(got) != d.UnixMilli() {
		t.Fatalf("timestamp mode: got %v, want %d", got, d.UnixMilli())
	}
}

func TestStringify_DateModeRoundTripWithRevival(t *testing.T) {
	d := time.Date(2024, 6, 1, 12, 30, 45, 123456789, time.UTC)
	out, err := handlejson.Stringify(map[string]any{"d": d}, handlejson.EncodeOpt{Dates: handlejson.DateISO})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	back, err := handlejson.Parse([]byte(out), handlejson.ParseOpt{ReviveDates: true})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got := back.(map[string]any)["d"].(time.Time)
	if got.UnixMilli() != d.UnixMilli() {
		t.Fatalf("millisecond round trip mismatch: %v vs %v", got, d)
	}
}

func TestStringify_BigIntMarker(t *testing.T) {
	n := new(big.Int)
	n.SetString("123456789012345678901234567890", 10)
	out, err := handlejson.Stringify(map[string]any{"n": n})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, `"n":"123456789012345678901234567890n"`) {
		t.Fatalf("expected marked bigint string: %s", out)
	}
}

func TestStringify_ReplacerRunsFirst(t *testing.T) {
	// The replacer's return value feeds every later step: returning a
	// time.Time must still hit date coercion.
	rep := func(key string, v any) any {
		if key == "d" {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		}
		return v
	}
	out, err := handlejson.Stringify(map[string]any{"d": "placeholder"},
		handlejson.EncodeOpt{Replacer: rep, Dates: handlejson.DateUnixMilli})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, `"d":1704067200000`) {
		t.Fatalf("replacer output must pass through date coercion: %s", out)
	}
}

func TestStringify_ReplacerPanicBecomesError(t *testing.T) {
	rep := func(key string, v any) any {
		if key == "boom" {
			panic("replacer exploded")
		}
		return v
	}
	_, err := handlejson.Stringify(map[string]any{"boom": 1.0}, handlejson.EncodeOpt{Replacer: rep})
	if err == nil {
		t.Fatalf("expected error from panicking replacer")
	}
	if _, ok := handlejson.SafeStringify(map[string]any{"boom": 1.0}, handlejson.EncodeOpt{Replacer: rep}); ok {
		t.Fatalf("SafeStringify must collapse the failure")
	}
}

func TestStringify_UnrepresentableKinds(t *testing.T) {
	fn := func() {}
	out, err := handlejson.Stringify(map[string]any{"f": fn, "keep": 1.0})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if out != `{"keep":1}` {
		t.Fatalf("func fields must be omitted from objects: %s", out)
	}

	out, err = handlejson.Stringify(map[string]any{"xs": []any{1.0, fn, 2.0}})
	if err != nil {
		t.Fatalf("stringify failed: %v", err)
	}
	if !strings.Contains(out, `"xs":[1,null,2]`) {
		t.Fatalf("func elements must become null in arrays: %s", out)
	}
}
