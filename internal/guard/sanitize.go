package guard

// The three well-known prototype-pollution-sensitive key names, matched
// case-sensitively at every nesting level.
var unsafeKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// UnsafeKey reports whether name is one of the stripped key names.
func UnsafeKey(name string) bool {
	_, ok := unsafeKeys[name]
	return ok
}

// Sanitize strips the unsafe key names from every object in the tree,
// including objects inside array elements. Untouched subtrees are returned
// as-is rather than copied; a copy is produced only on the paths where
// something was actually removed. The second result reports whether any
// key was stripped anywhere below v.
func Sanitize(v any) (any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return sanitizeObject(v)
	case []any:
		return sanitizeArray(v)
	}
	return v, false
}

func sanitizeObject(m map[string]any) (any, bool) {
	var out map[string]any
	visited := make([]string, 0, len(m))
	for k, elem := range m {
		if UnsafeKey(k) {
			if out == nil {
				out = copyVisited(m, visited)
			}
			continue
		}
		clean, changed := Sanitize(elem)
		if changed && out == nil {
			out = copyVisited(m, visited)
		}
		if out != nil {
			out[k] = clean
		}
		visited = append(visited, k)
	}
	if out == nil {
		return m, false
	}
	return out, true
}

// copyVisited seeds a copy-on-write map with the entries already passed
// over; those are known unchanged or they would have triggered the copy.
func copyVisited(m map[string]any, keys []string) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range keys {
		out[k] = m[k]
	}
	return out
}

func sanitizeArray(s []any) (any, bool) {
	var out []any
	for i, elem := range s {
		clean, changed := Sanitize(elem)
		if changed && out == nil {
			out = make([]any, len(s))
			copy(out, s[:i])
		}
		if out != nil {
			out[i] = clean
		}
	}
	if out == nil {
		return s, false
	}
	return out, true
}
