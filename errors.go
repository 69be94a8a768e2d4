package handlejson

import "fmt"

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError  = "parse_error"
	CodeTooBig      = "too_big"
	CodeMaxDepth    = "max_depth"
	CodeInvalidType = "invalid_type"
	CodeStringify   = "stringify_error"
)

// Issue represents a single pipeline failure. The guarded pipelines stop at
// the first failing stage, so an error is always exactly one Issue.
type Issue struct {
	Code    string // One of the codes listed above.
	Path    string // Field locator for schema failures (for example: users[1].name).
	Message string
	Cause   error // Optional: underlying error.
	Offset  int64 // Character offset in the input source (-1 when unknown).
	// InputFragment is an optional snippet of the offending input. Because it
	// can be expensive to produce, it is best-effort and decode-stage only.
	InputFragment string
}

func (i *Issue) Error() string {
	if i.Path != "" {
		return fmt.Sprintf("handlejson: %s at %s: %s", i.Code, i.Path, i.Message)
	}
	return fmt.Sprintf("handlejson: %s: %s", i.Code, i.Message)
}

func (i *Issue) Unwrap() error { return i.Cause }

func newIssue(code, msg string) *Issue {
	return &Issue{Code: code, Message: msg, Offset: -1}
}
