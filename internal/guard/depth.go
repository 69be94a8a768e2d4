// Package guard implements the input-hygiene walks of the parse pipeline:
// nesting-depth enforcement and prototype-pollution key stripping. Both are
// full tree walks over an already decoded value, distinct from the decode
// walk itself.
package guard

// ExceedsDepth reports whether v nests deeper than max levels. Each descent
// into an object or array counts one level, so a flat object is depth 1.
// max <= 0 disables the check.
func ExceedsDepth(v any, max int) bool {
	if max <= 0 {
		return false
	}
	return exceeds(v, max)
}

func exceeds(v any, remaining int) bool {
	switch v := v.(type) {
	case map[string]any:
		if remaining <= 0 {
			return true
		}
		for _, elem := range v {
			if exceeds(elem, remaining-1) {
				return true
			}
		}
	case []any:
		if remaining <= 0 {
			return true
		}
		for _, elem := range v {
			if exceeds(elem, remaining-1) {
				return true
			}
		}
	}
	return false
}
