package errpos_test

import (
	"errors"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/chintanshah35/handlejson/internal/errpos"
)

func TestOffset_TypedSyntaxError(t *testing.T) {
	var v any
	err := gojson.Unmarshal([]byte(`{"a": }`), &v)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	off, ok := errpos.Offset(err)
	if !ok {
		t.Fatalf("expected an offset from a typed syntax error")
	}
	if off <= 0 || off > 7 {
		t.Fatalf("implausible offset %d", off)
	}
}

func TestOffset_PatternFallback(t *testing.T) {
	off, ok := errpos.Offset(errors.New("unexpected token at offset 42"))
	if !ok || off != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", off, ok)
	}

	// line numbers convert through a fixed average width; approximate by design
	off, ok = errpos.Offset(errors.New("parse failure on line 3"))
	if !ok || off != 160 {
		t.Fatalf("got (%d, %v), want (160, true)", off, ok)
	}

	if _, ok := errpos.Offset(errors.New("no position here")); ok {
		t.Fatalf("expected extraction failure")
	}
}

func TestExcerpt_Window(t *testing.T) {
	src := []byte(strings.Repeat("x", 100) + "HERE" + strings.Repeat("y", 100))
	got := errpos.Excerpt(src, 102, 20)
	if len(got) != 20 {
		t.Fatalf("window width %d, want 20", len(got))
	}
	if !strings.Contains(got, "HERE") {
		t.Fatalf("window must center on the offset: %q", got)
	}
}

func TestExcerpt_ClampsToBounds(t *testing.T) {
	src := []byte("tiny")
	if got := errpos.Excerpt(src, 0, 40); got != "tiny" {
		t.Fatalf("got %q", got)
	}
	if got := errpos.Excerpt(src, 999, 40); got != "tiny" {
		t.Fatalf("out-of-range offsets clamp: %q", got)
	}
	if got := errpos.Excerpt(nil, 0, 40); got != "" {
		t.Fatalf("empty source yields empty excerpt: %q", got)
	}
}

func TestExcerpt_EscapesControlCharacters(t *testing.T) {
	got := errpos.Excerpt([]byte("a\nb\tc\x01d"), 3, 40)
	if got != `a\nb\tc\u0001d` {
		t.Fatalf("got %q", got)
	}
}
