// Package errpos extracts best-effort position diagnostics from a decoder's
// failure. Typed syntax errors carry an exact offset; for anything else the
// error text is pattern-matched, which is a diagnostic convenience rather
// than a contract.
package errpos

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

var (
	offsetPattern = regexp.MustCompile(`offset (\d+)`)
	linePattern   = regexp.MustCompile(`line (\d+)`)
)

// avgLineWidth converts a line number from an error message into an
// approximate character offset. Explicitly approximate.
const avgLineWidth = 80

// Offset extracts a character offset from a decode error. The second result
// is false when no position could be recovered.
func Offset(err error) (int64, bool) {
	var se *gojson.SyntaxError
	if errors.As(err, &se) {
		return se.Offset, true
	}
	msg := err.Error()
	if m := offsetPattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return n, true
		}
	}
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return (n - 1) * avgLineWidth, true
		}
	}
	return -1, false
}

// Excerpt returns a window of src of at most width characters centered on
// off, with control characters escaped for display.
func Excerpt(src []byte, off int64, width int) string {
	if len(src) == 0 || width <= 0 {
		return ""
	}
	if off < 0 {
		off = 0
	}
	if off > int64(len(src)) {
		off = int64(len(src))
	}
	lo := off - int64(width)/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + int64(width)
	if hi > int64(len(src)) {
		hi = int64(len(src))
		if lo = hi - int64(width); lo < 0 {
			lo = 0
		}
	}
	return escapeControl(string(src[lo:hi]))
}

func escapeControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
