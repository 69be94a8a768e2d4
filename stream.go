package handlejson

import "bytes"

// Reassembler buffers incoming text fragments and reattempts a guarded
// whole-document parse on each chunk boundary. It does not parse partial
// tokens; the buffer-so-far either parses as a complete document or it
// does not. The first opportunistic success is reported once through the
// progress callback, and Close returns the terminal result.
type Reassembler struct {
	buf      bytes.Buffer
	opt      ParseOpt
	progress func(v any)
	notified bool
	closed   bool
}

// NewReassembler returns a Reassembler parsing with opt. progress may be
// nil; when set it fires at most once, on the first chunk boundary where
// the accumulated buffer parses.
func NewReassembler(opt ParseOpt, progress func(v any)) *Reassembler {
	return &Reassembler{opt: opt, progress: progress}
}

// Write appends a fragment and attempts an opportunistic parse. It
// implements io.Writer and never reports a write error; parse failures on
// an incomplete buffer are expected and silent.
func (r *Reassembler) Write(p []byte) (int, error) {
	if r.closed {
		return 0, nil
	}
	r.buf.Write(p)
	if r.progress != nil && !r.notified {
		if v, err := Parse(r.buf.Bytes(), r.opt); err == nil {
			r.notified = true
			r.progress(v)
		}
	}
	return len(p), nil
}

// Len reports the number of buffered bytes.
func (r *Reassembler) Len() int { return r.buf.Len() }

// Close runs the final guarded parse over the full buffer and returns its
// result. Further writes are ignored.
func (r *Reassembler) Close() (any, error) {
	r.closed = true
	return Parse(r.buf.Bytes(), r.opt)
}
